package parser

import (
	"math"
	"testing"

	"github.com/ukaji3/csv2xlsx-go/pkg/csv2xlsx/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellValue
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"+7", models.Number(7)},
		{".5", models.Number(0.5)},
		{"5.", models.Number(5)},
		{"1e3", models.Number(1000)},
		{"-2.5E-3", models.Number(-0.0025)},
		{"0.1", models.Number(0.1)},
		{"hello", models.Text("hello")},
		{"12abc", models.Text("12abc")},
		{" 12", models.Text(" 12")},
		{"1,5", models.Text("1,5")},
		{"$10", models.Text("$10")},
		{"50%", models.Text("50%")},
		{"0x1p-2", models.Text("0x1p-2")},
		{"-0X10", models.Text("-0X10")},
		{"1_000", models.Text("1_000")},
		{"inf", models.Text("inf")},
		{"-Infinity", models.Text("-Infinity")},
		{"1e400", models.Text("1e400")},
		{"NaN", models.Empty()},
		{"nan", models.Empty()},
		{"", models.Empty()},
	}

	for _, tt := range tests {
		result := Classify(tt.input)
		if result != tt.expected {
			t.Errorf("Classify(%q) = %+v (%s), expected %+v (%s)",
				tt.input, result, result.Kind, tt.expected, tt.expected.Kind)
		}
	}
}

func TestClassifyRoundTrip(t *testing.T) {
	for _, s := range []string{"3.141592653589793", "1e-300", "123456789012345678", "-0.000001", "2.2250738585072014e-308"} {
		v := Classify(s)
		if v.Kind != models.CellNumber {
			t.Fatalf("Classify(%q) kind = %s, expected number", s, v.Kind)
		}
		if math.IsInf(v.Number, 0) || math.IsNaN(v.Number) {
			t.Errorf("Classify(%q) = %v, expected a finite value", s, v.Number)
		}
	}
}

func TestExceeded(t *testing.T) {
	if exceeded(5, 10) {
		t.Error("exceeded(5, 10) = true, expected false")
	}
	if !exceeded(10, 10) {
		t.Error("exceeded(10, 10) = false, expected true")
	}
	if !exceeded(15, 10) {
		t.Error("exceeded(15, 10) = false, expected true")
	}
}

func TestLimits(t *testing.T) {
	if MaxRows != 1048576 {
		t.Errorf("MaxRows = %d, expected 1048576", MaxRows)
	}
	if MaxColumns != 16384 {
		t.Errorf("MaxColumns = %d, expected 16384", MaxColumns)
	}
	if defaultLimits.rows != MaxRows || defaultLimits.columns != MaxColumns {
		t.Errorf("defaultLimits = %+v, expected the format limits", defaultLimits)
	}
}
