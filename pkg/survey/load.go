package survey

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
)

// Workbook sheet names, matching the survey workbook layout.
const (
	SheetInterest      = "Interest in AS"
	SheetSatisfaction  = "Satisfaction scales"
	SheetInterventions = "ASP interventions"
	SheetBarriers      = "Barriers"
)

// Load reads a survey workbook into a typed Dataset. Each sheet must carry
// a header row; columns are matched by name (case-insensitive). A missing
// file, sheet, or column fails with DATA_SOURCE.
//
// The sample size is the process-wide TotalPrograms constant; it is not
// recomputed from the workbook.
func Load(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSource, err, "open workbook %s", path)
	}
	defer f.Close()

	d := &Dataset{SampleSize: TotalPrograms}

	if d.Interest, err = loadInterest(f); err != nil {
		return nil, err
	}
	if d.Satisfaction, err = loadSatisfaction(f); err != nil {
		return nil, err
	}
	if d.Interventions, err = loadInterventions(f); err != nil {
		return nil, err
	}
	if d.Barriers, err = loadBarriers(f); err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// sheetTable is one sheet split into a header index and data rows.
type sheetTable struct {
	sheet string
	cols  map[string]int
	rows  [][]string
}

func readSheet(f *excelize.File, sheet string) (*sheetTable, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSource, err, "read sheet %q", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeDataSource, "sheet %q is empty", sheet)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return &sheetTable{sheet: sheet, cols: cols, rows: rows[1:]}, nil
}

// cell returns the value of the named column in row, or an error if the
// column is absent from the header.
func (t *sheetTable) cell(row []string, col string) (string, error) {
	i, ok := t.cols[strings.ToLower(col)]
	if !ok {
		return "", errors.New(errors.ErrCodeDataSource, "sheet %q is missing column %q", t.sheet, col)
	}
	if i >= len(row) {
		return "", nil // trailing empty cells are omitted by excelize
	}
	return strings.TrimSpace(row[i]), nil
}

func (t *sheetTable) intCell(row []string, col string) (int, error) {
	s, err := t.cell(row, col)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeDataSource, err, "sheet %q column %q: not an integer", t.sheet, col)
	}
	return v, nil
}

func (t *sheetTable) floatCell(row []string, col string) (float64, error) {
	s, err := t.cell(row, col)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeDataSource, err, "sheet %q column %q: not a number", t.sheet, col)
	}
	return v, nil
}

func loadInterest(f *excelize.File) ([]InterestRow, error) {
	t, err := readSheet(f, SheetInterest)
	if err != nil {
		return nil, err
	}
	var out []InterestRow
	for _, row := range t.rows {
		r := InterestRow{}
		if r.Range, err = t.cell(row, "Range"); err != nil {
			return nil, err
		}
		if r.Range == "" {
			continue
		}
		if r.Interest, err = t.intCell(row, "Interest"); err != nil {
			return nil, err
		}
		if r.Career, err = t.intCell(row, "Career"); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func loadSatisfaction(f *excelize.File) ([]SatisfactionRow, error) {
	t, err := readSheet(f, SheetSatisfaction)
	if err != nil {
		return nil, err
	}
	var out []SatisfactionRow
	for _, row := range t.rows {
		r := SatisfactionRow{}
		if r.Category, err = t.cell(row, "Category"); err != nil {
			return nil, err
		}
		if r.Category == "" {
			continue
		}
		if r.VeryDissatisfied, err = t.intCell(row, "Very Dissatisfied"); err != nil {
			return nil, err
		}
		if r.SomewhatDissatisfied, err = t.intCell(row, "Somewhat Dissatisfied"); err != nil {
			return nil, err
		}
		if r.Neither, err = t.intCell(row, "Neither"); err != nil {
			return nil, err
		}
		if r.SomewhatSatisfied, err = t.intCell(row, "Somewhat Satisfied"); err != nil {
			return nil, err
		}
		if r.VerySatisfied, err = t.intCell(row, "Very Satisfied"); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func loadInterventions(f *excelize.File) ([]InterventionRow, error) {
	t, err := readSheet(f, SheetInterventions)
	if err != nil {
		return nil, err
	}
	var out []InterventionRow
	for _, row := range t.rows {
		r := InterventionRow{}
		if r.Name, err = t.cell(row, "Intervention"); err != nil {
			return nil, err
		}
		if r.Name == "" {
			continue
		}
		if r.WithPct, err = t.floatCell(row, "With Curriculum"); err != nil {
			return nil, err
		}
		if r.WithoutPct, err = t.floatCell(row, "Without Curriculum"); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func loadBarriers(f *excelize.File) ([]BarrierRow, error) {
	t, err := readSheet(f, SheetBarriers)
	if err != nil {
		return nil, err
	}
	var out []BarrierRow
	for _, row := range t.rows {
		r := BarrierRow{}
		if r.Name, err = t.cell(row, "Barrier"); err != nil {
			return nil, err
		}
		if r.Name == "" {
			continue
		}
		if r.Count, err = t.intCell(row, "Count"); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
