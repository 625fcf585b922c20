package form

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	set := []TechTag{TechReact}
	set = Toggle(set, TechNodeJS)
	if !reflect.DeepEqual(set, []TechTag{TechReact, TechNodeJS}) {
		t.Fatalf("after add: %v", set)
	}
	set = Toggle(set, TechReact)
	if !reflect.DeepEqual(set, []TechTag{TechNodeJS}) {
		t.Fatalf("after remove: %v", set)
	}
}

func TestRemoveAtShiftsLeft(t *testing.T) {
	list := []string{"a", "b", "c"}
	out, err := RemoveAt(list, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, []string{"a", "c"}) {
		t.Errorf("got %v", out)
	}
	if _, err := RemoveAt(out, 5); err == nil {
		t.Error("expected out-of-range error")
	}
	// input untouched
	if !reflect.DeepEqual(list, []string{"a", "b", "c"}) {
		t.Errorf("input mutated: %v", list)
	}
}

func TestSetFieldRejectsInvalidEnum(t *testing.T) {
	s := NewState()
	if _, err := SetField(s, "projectType", "spaceship"); err == nil {
		t.Error("expected error for invalid project type")
	}
	out, err := SetField(s, "projectType", "browser")
	if err != nil {
		t.Fatal(err)
	}
	if out.ProjectType != ProjectBrowser {
		t.Errorf("projectType = %q", out.ProjectType)
	}
	if s.ProjectType != "" {
		t.Error("input state mutated")
	}
}

func TestSetFieldAllowsClearing(t *testing.T) {
	s := completeState()
	out, err := SetField(s, "impactLevel", "")
	if err != nil {
		t.Fatal(err)
	}
	if out.ImpactLevel != "" {
		t.Errorf("impactLevel = %q, want empty", out.ImpactLevel)
	}
}

func TestAddItemDedupesTags(t *testing.T) {
	s := NewState()
	s, err := AddItem(s, "targetUsers", "team")
	if err != nil {
		t.Fatal(err)
	}
	s, err = AddItem(s, "targetUsers", "team")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.TargetUsers) != 1 {
		t.Errorf("targetUsers = %v, want single entry", s.TargetUsers)
	}
}

func TestAddItemParsesMetric(t *testing.T) {
	s := NewState()
	s, err := AddItem(s, "successMetrics", "Load time:2:seconds")
	if err != nil {
		t.Fatal(err)
	}
	want := SuccessMetric{Name: "Load time", Target: "2", Unit: UnitSeconds}
	if !reflect.DeepEqual(s.SuccessMetrics[0], want) {
		t.Errorf("metric = %+v, want %+v", s.SuccessMetrics[0], want)
	}
	if _, err := AddItem(NewState(), "successMetrics", "no separator"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := AddItem(NewState(), "successMetrics", "x:1:lightyears"); err == nil {
		t.Error("expected invalid unit error")
	}
}

func TestRemoveItemAtOnLists(t *testing.T) {
	s := NewState()
	s.CoreFeatures = []string{"one", "two", "three"}
	s, err := RemoveItemAt(s, "coreFeatures", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.CoreFeatures, []string{"two", "three"}) {
		t.Errorf("coreFeatures = %v", s.CoreFeatures)
	}
	if _, err := RemoveItemAt(s, "noSuchField", 0); err == nil {
		t.Error("expected unknown field error")
	}
}

func TestStateJSONRoundTrip(t *testing.T) {
	s := completeState()
	s.TechStack = []TechTag{TechReact, TechOther}
	s.TechStackOther = "Svelte"
	s.Workarounds = []Workaround{WorkaroundManual, WorkaroundSpreadsheets}
	s.TimeAmount = "30"
	s.DataSourceURLs = []string{"https://example.com/data.csv"}

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var back State
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s, back) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", s, back)
	}
}

func TestNormalizeFillsNilCollections(t *testing.T) {
	var s State
	s = s.Normalize()
	if s.TargetUsers == nil || s.CoreFeatures == nil || s.SuccessMetrics == nil || s.TechnicalReferences == nil {
		t.Error("Normalize left nil collections")
	}
}
