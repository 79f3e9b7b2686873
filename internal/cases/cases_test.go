package cases

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func TestParse_Overrides(t *testing.T) {
	src := []byte(`
lab "prime" {
  numbers = [2, 17, 25]
}

lab "cm2in" {
  values = [10, 2.54]
}

lab "name" {
  texts = ["Ada Lovelace", "Plato"]
}

lab "leapyear" {
  numbers = [current_year, current_year + 2]
}
`)
	set, err := Parse("cases.hcl", src, fixedNow)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if got := set.Numbers("prime", nil); !reflect.DeepEqual(got, []int{2, 17, 25}) {
		t.Errorf("prime numbers = %v", got)
	}
	if got := set.Values("cm2in", nil); !reflect.DeepEqual(got, []float64{10, 2.54}) {
		t.Errorf("cm2in values = %v", got)
	}
	if got := set.Texts("name", nil); !reflect.DeepEqual(got, []string{"Ada Lovelace", "Plato"}) {
		t.Errorf("name texts = %v", got)
	}
	if got := set.Numbers("leapyear", nil); !reflect.DeepEqual(got, []int{2026, 2028}) {
		t.Errorf("leapyear numbers = %v", got)
	}

	wantNames := []string{"cm2in", "leapyear", "name", "prime"}
	if got := set.Names(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}
}

func TestSet_DefaultsWhenAbsent(t *testing.T) {
	set, err := Parse("cases.hcl", []byte(`lab "prime" {}`), fixedNow)
	if err != nil {
		t.Fatal(err)
	}
	def := []int{1, 2}
	if got := set.Numbers("prime", def); !reflect.DeepEqual(got, def) {
		t.Errorf("block without numbers should keep defaults, got %v", got)
	}
	if got := set.Numbers("factorial", def); !reflect.DeepEqual(got, def) {
		t.Errorf("missing lab should keep defaults, got %v", got)
	}

	var nilSet *Set
	if got := nilSet.Texts("name", []string{"x"}); len(got) != 1 {
		t.Errorf("nil set should return defaults, got %v", got)
	}
	if nilSet.Names() != nil {
		t.Error("nil set has no names")
	}
}

func TestParse_DuplicateLab(t *testing.T) {
	src := []byte(`
lab "prime" { numbers = [1] }
lab "prime" { numbers = [2] }
`)
	_, err := Parse("cases.hcl", src, fixedNow)
	if err == nil || !strings.Contains(err.Error(), "duplicate lab") {
		t.Errorf("expected duplicate lab error, got %v", err)
	}
}

func TestParse_SyntaxError(t *testing.T) {
	if _, err := Parse("cases.hcl", []byte(`lab "prime" {`), fixedNow); err == nil {
		t.Error("expected syntax error")
	}
}

func TestParse_WrongType(t *testing.T) {
	if _, err := Parse("cases.hcl", []byte(`lab "prime" { numbers = ["x"] }`), fixedNow); err == nil {
		t.Error("expected type error for string in numbers")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.hcl")
	if err := os.WriteFile(path, []byte(`lab "vowels" { texts = ["queue"] }`), 0o600); err != nil {
		t.Fatal(err)
	}
	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := set.Texts("vowels", nil); len(got) != 1 || got[0] != "queue" {
		t.Errorf("vowels texts = %v", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.hcl")); err == nil {
		t.Error("expected error for missing cases file")
	}
}
