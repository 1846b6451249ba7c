package dsv

import (
	"bytes"
	"testing"
)

func TestProfiler(t *testing.T) {
	b := bytes.NewBufferString("A\tB\tC\n1\t\t3\n4\t5\t\n7\t8\t9\n")

	pr := NewProfiler(b)
	p, err := pr.Profile()
	if err != nil {
		t.Fatal(err)
	}

	if len(p.Columns) != 3 {
		t.Errorf("expected 3 columns, got %d", len(p.Columns))
	}

	if p.RowCount != 3 {
		t.Errorf("expected 3 rows, got %d", p.RowCount)
	}

	expected := map[string]struct {
		Filled  int64
		Empty   int64
		Samples []string
	}{
		"A": {3, 0, []string{"1", "4", "7"}},
		"B": {2, 1, []string{"5", "8"}},
		"C": {2, 1, []string{"3", "9"}},
	}

	for name, exp := range expected {
		f, ok := p.Fields[name]
		if !ok {
			t.Fatalf("missing field %s", name)
		}

		if f.Filled != exp.Filled {
			t.Errorf("%s: expected %d filled, got %d", name, exp.Filled, f.Filled)
		}

		if f.Empty != exp.Empty {
			t.Errorf("%s: expected %d empty, got %d", name, exp.Empty, f.Empty)
		}

		if f.Filled+f.Empty != p.RowCount {
			t.Errorf("%s: filled+empty = %d, want %d", name, f.Filled+f.Empty, p.RowCount)
		}

		if !compareRows(f.Samples, exp.Samples) {
			t.Errorf("%s: expected samples %v, got %v", name, exp.Samples, f.Samples)
		}
	}
}

func TestProfilerIndexes(t *testing.T) {
	b := bytes.NewBufferString("VoterID\tLastName\n1\tSpinner\n")

	pr := NewProfiler(b)
	p, err := pr.Profile()
	if err != nil {
		t.Fatal(err)
	}

	if p.Fields["VoterID"].Index != 1 {
		t.Errorf("expected index 1, got %d", p.Fields["VoterID"].Index)
	}

	if p.Fields["LastName"].Index != 2 {
		t.Errorf("expected index 2, got %d", p.Fields["LastName"].Index)
	}
}

func TestProfilerSampleLimit(t *testing.T) {
	b := bytes.NewBufferString("A\n1\n2\n3\n4\n5\n")

	pr := NewProfiler(b)
	pr.SampleSize = 2

	p, err := pr.Profile()
	if err != nil {
		t.Fatal(err)
	}

	if p.RowCount != 2 {
		t.Errorf("expected 2 rows, got %d", p.RowCount)
	}

	if p.Fields["A"].Filled != 2 {
		t.Errorf("expected 2 filled, got %d", p.Fields["A"].Filled)
	}
}

func TestProfilerShortFile(t *testing.T) {
	// Fewer rows than the sample limit is not an error.
	b := bytes.NewBufferString("A\tB\n1\t2\n")

	pr := NewProfiler(b)
	p, err := pr.Profile()
	if err != nil {
		t.Fatal(err)
	}

	if p.RowCount != 1 {
		t.Errorf("expected 1 row, got %d", p.RowCount)
	}
}

func TestProfilerHeaderOnly(t *testing.T) {
	b := bytes.NewBufferString("A\tB\tC\n")

	pr := NewProfiler(b)
	p, err := pr.Profile()
	if err != nil {
		t.Fatal(err)
	}

	if p.RowCount != 0 {
		t.Errorf("expected 0 rows, got %d", p.RowCount)
	}

	if len(p.Columns) != 3 {
		t.Errorf("expected 3 columns, got %d", len(p.Columns))
	}
}

func TestProfilerNoHeader(t *testing.T) {
	b := bytes.NewBufferString("1\t2\n3\t\n")

	pr := NewProfiler(b)
	pr.Header = false

	p, err := pr.Profile()
	if err != nil {
		t.Fatal(err)
	}

	if p.RowCount != 2 {
		t.Errorf("expected 2 rows, got %d", p.RowCount)
	}

	f, ok := p.Fields["c2"]
	if !ok {
		t.Fatal("missing synthesized field c2")
	}

	if f.Filled != 1 || f.Empty != 1 {
		t.Errorf("c2: expected 1 filled and 1 empty, got %d and %d", f.Filled, f.Empty)
	}
}

func TestProfilerMidFieldQuote(t *testing.T) {
	// Stray quotes in values must not abort the analysis.
	b := bytes.NewBufferString("LastName\tHeight\nO\"Brien\t5'10\"\nSmith\t6'\n")

	pr := NewProfiler(b)
	p, err := pr.Profile()
	if err != nil {
		t.Fatal(err)
	}

	if p.RowCount != 2 {
		t.Errorf("expected 2 rows, got %d", p.RowCount)
	}

	f := p.Fields["Height"]

	if f.Filled != 2 {
		t.Errorf("expected 2 filled, got %d", f.Filled)
	}

	if !compareRows(f.Samples, []string{`5'10"`, "6'"}) {
		t.Errorf("wrong samples: %v", f.Samples)
	}
}

func TestProfilerDuplicateHeader(t *testing.T) {
	// A repeated column name is counted once per row, from its last
	// position, so filled+empty still equals the rows analyzed.
	b := bytes.NewBufferString("A\tA\tB\n1\t2\t3\nx\t\t4\n")

	pr := NewProfiler(b)
	p, err := pr.Profile()
	if err != nil {
		t.Fatal(err)
	}

	if len(p.Columns) != 3 {
		t.Errorf("expected 3 columns, got %d", len(p.Columns))
	}

	f := p.Fields["A"]

	if f.Filled+f.Empty != p.RowCount {
		t.Errorf("filled+empty = %d, want %d", f.Filled+f.Empty, p.RowCount)
	}

	if f.Filled != 1 || f.Empty != 1 {
		t.Errorf("expected 1 filled and 1 empty, got %d and %d", f.Filled, f.Empty)
	}

	if !compareRows(f.Samples, []string{"2"}) {
		t.Errorf("wrong samples: %v", f.Samples)
	}

	if f.Index != 2 {
		t.Errorf("expected index 2, got %d", f.Index)
	}
}

func TestProfilerWhitespaceOnly(t *testing.T) {
	b := bytes.NewBufferString("A\n   \n")

	pr := NewProfiler(b)
	p, err := pr.Profile()
	if err != nil {
		t.Fatal(err)
	}

	f := p.Fields["A"]

	if f.Filled != 0 || f.Empty != 1 {
		t.Errorf("expected whitespace to count as empty, got %d filled, %d empty", f.Filled, f.Empty)
	}
}
