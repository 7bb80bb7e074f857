package seyyul

import (
	"reflect"
	"testing"
)

func TestLoadCorporaDegraded(t *testing.T) {
	doc := `{
		"key": "test",
		"title": "சோதனை நூல்",
		"section_fields": ["pal", "adhigaram"],
		"verses": [
			{"number": 1, "sections": {"pal": "அறம்", "adhigaram": "முதல்"}, "text": "அறம் செய விரும்பு", "meaning": "உரை"},
			{"number": 0, "text": "எண் இல்லாத பாடல்"},
			{"sections": {"pal": "அறம்"}, "text": "எண்ணே இல்லை"},
			{"number": 3, "text": ""},
			"not an object",
			{"number": 4, "text": "ஆறுவது சினம்"}
		]
	}`

	store, err := LoadCorpora(NewNormalizer(), []byte(doc))
	if err != nil {
		t.Fatalf("LoadCorpora: %v", err)
	}

	c, ok := store.Get("test")
	if !ok {
		t.Fatal("corpus not registered")
	}
	if len(c.Verses) != 2 {
		t.Fatalf("loaded %d verses, want 2", len(c.Verses))
	}
	if c.Skipped != 4 {
		t.Errorf("skipped = %d, want 4", c.Skipped)
	}

	want := []string{"அறம்", "முதல்"}
	if !reflect.DeepEqual(c.Verses[0].SectionLabels, want) {
		t.Errorf("section labels = %v, want %v", c.Verses[0].SectionLabels, want)
	}
	if len(c.Verses[1].SectionLabels) != 0 {
		t.Errorf("verse without sections got labels %v", c.Verses[1].SectionLabels)
	}
}

func TestLoadCorporaRegistrationOrder(t *testing.T) {
	docs := [][]byte{
		[]byte(`{"key": "b", "title": "B", "verses": [{"number": 1, "text": "ஒன்று"}]}`),
		[]byte(`{"key": "a", "title": "A", "verses": [{"number": 1, "text": "இரண்டு"}]}`),
	}
	store, err := LoadCorpora(NewNormalizer(), docs...)
	if err != nil {
		t.Fatalf("LoadCorpora: %v", err)
	}
	all := store.All()
	if len(all) != 2 || all[0].Key != "b" || all[1].Key != "a" {
		t.Errorf("registration order not preserved: %v, %v", all[0].Key, all[1].Key)
	}
}

func TestLoadCorporaErrors(t *testing.T) {
	n := NewNormalizer()

	if _, err := LoadCorpora(n, []byte(`not json`)); err == nil {
		t.Error("unparseable document did not fail")
	}
	if _, err := LoadCorpora(n, []byte(`{"title": "no key", "verses": []}`)); err == nil {
		t.Error("document without a key did not fail")
	}
	dup := []byte(`{"key": "x", "verses": [{"number": 1, "text": "சொல்"}]}`)
	if _, err := LoadCorpora(n, dup, dup); err == nil {
		t.Error("duplicate key did not fail")
	}
}

func TestBundledCorpora(t *testing.T) {
	store, err := DefaultCorpora(NewNormalizer())
	if err != nil {
		t.Fatalf("DefaultCorpora: %v", err)
	}

	stats := store.Stats()
	if len(stats) != 3 {
		t.Fatalf("bundled corpora = %d, want 3", len(stats))
	}
	wantOrder := []string{"thirukkural", "kambaramayanam", "aathichudi"}
	for i, cs := range stats {
		if cs.Key != wantOrder[i] {
			t.Errorf("corpus %d = %s, want %s", i, cs.Key, wantOrder[i])
		}
		if cs.Verses == 0 {
			t.Errorf("corpus %s has no verses", cs.Key)
		}
		if cs.Skipped != 0 {
			t.Errorf("corpus %s skipped %d bundled records", cs.Key, cs.Skipped)
		}
	}

	kural, _ := store.Get("thirukkural")
	if kural.Verses[0].Number != 1 {
		t.Errorf("first kural numbered %d, want 1", kural.Verses[0].Number)
	}
}
