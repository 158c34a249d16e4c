package survey

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
)

// writeTestWorkbook writes a minimal survey workbook and returns its path.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]interface{}{
		SheetInterest: {
			{"Range", "Interest", "Career"},
			{"0-25%", 11, 20},
			{"26-50%", 10, 4},
			{"51-75%", 5, 3},
			{"76-100%", 1, 0},
		},
		SheetSatisfaction: {
			{"Category", "Very Dissatisfied", "Somewhat Dissatisfied", "Neither", "Somewhat Satisfied", "Very Satisfied"},
			{"General education", 1, 2, 1, 14, 9},
			{"Clinical practice", 0, 2, 0, 15, 10},
			{"Leadership role", 1, 3, 8, 12, 3},
		},
		SheetInterventions: {
			{"Intervention", "With Curriculum", "Without Curriculum"},
			{"Education of residents/faculty", 76.47, 50},
			{"Antibiotic Timeout", 17.65, 0},
		},
		SheetBarriers: {
			{"Barrier", "Count"},
			{"Lack of educator time", 12},
			{"Lack of materials", 9},
		},
	}

	for sheet, rows := range sheets {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatal(err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				t.Fatal(err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "survey.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	d, err := Load(writeTestWorkbook(t))
	if err != nil {
		t.Fatal(err)
	}

	if d.SampleSize != TotalPrograms {
		t.Errorf("SampleSize = %d, want %d", d.SampleSize, TotalPrograms)
	}
	if len(d.Interest) != 4 {
		t.Fatalf("len(Interest) = %d, want 4", len(d.Interest))
	}
	if d.Interest[0].Interest != 11 || d.Interest[0].Career != 20 {
		t.Errorf("Interest[0] = %+v", d.Interest[0])
	}
	if len(d.Satisfaction) != 3 {
		t.Fatalf("len(Satisfaction) = %d, want 3", len(d.Satisfaction))
	}
	if d.Satisfaction[2].Neither != 8 {
		t.Errorf("Satisfaction[2].Neither = %d, want 8", d.Satisfaction[2].Neither)
	}
	if len(d.Interventions) != 2 {
		t.Fatalf("len(Interventions) = %d, want 2", len(d.Interventions))
	}
	if d.Interventions[0].WithPct != 76.47 || d.Interventions[0].WithoutPct != 50 {
		t.Errorf("Interventions[0] = %+v", d.Interventions[0])
	}
	if len(d.Barriers) != 2 || d.Barriers[0].Count != 12 {
		t.Errorf("Barriers = %+v", d.Barriers)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	if !errors.Is(err, errors.ErrCodeDataSource) {
		t.Errorf("want DATA_SOURCE, got %v", err)
	}
}

func TestLoadMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeDataSource) {
		t.Errorf("want DATA_SOURCE, got %v", err)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range []string{SheetInterest, SheetSatisfaction, SheetInterventions, SheetBarriers} {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatal(err)
		}
	}
	// Interest sheet without the Career column.
	header := []interface{}{"Range", "Interest"}
	if err := f.SetSheetRow(SheetInterest, "A1", &header); err != nil {
		t.Fatal(err)
	}
	row := []interface{}{"0-25%", 11}
	if err := f.SetSheetRow(SheetInterest, "A2", &row); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "partial.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeDataSource) {
		t.Errorf("want DATA_SOURCE, got %v", err)
	}
}
