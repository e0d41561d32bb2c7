package hashmap

import (
	"strconv"
	"testing"
)

func TestHashTableEntries(t *testing.T) {
	ht := New()

	all := ht.Entries()
	if len(all) != 0 {
		t.Errorf("Expected empty map, got %d entries", len(all))
	}

	ht.Set("field1", "value1")
	ht.Set("field2", "value2")
	ht.Set("field3", "value3")

	all = ht.Entries()
	if len(all) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(all))
	}

	expected := map[string]string{
		"field1": "value1",
		"field2": "value2",
		"field3": "value3",
	}

	for field, expectedValue := range expected {
		value, exists := all[field]
		if !exists {
			t.Errorf("Expected field %s to exist in Entries result", field)
		}
		if value != expectedValue {
			t.Errorf("Expected %s for field %s, got %s", expectedValue, field, value)
		}
	}

	all["field1"] = "mutated"
	if value, _ := ht.Get("field1"); value != "value1" {
		t.Error("Expected Entries to return a detached copy")
	}
}

func TestHashTableKeys(t *testing.T) {
	ht := New()

	ht.Set("field1", "value1")
	ht.Set("field2", "value2")
	ht.Set("field3", "value3")

	keys := ht.Keys()
	if len(keys) != 3 {
		t.Errorf("Expected 3 keys, got %d", len(keys))
	}

	expectedKeys := map[string]bool{
		"field1": true,
		"field2": true,
		"field3": true,
	}

	for _, key := range keys {
		if !expectedKeys[key] {
			t.Errorf("Unexpected key: %s", key)
		}
		delete(expectedKeys, key)
	}

	if len(expectedKeys) != 0 {
		t.Errorf("Missing keys: %v", expectedKeys)
	}
}

func TestHashTableValues(t *testing.T) {
	ht := New()

	ht.Set("field1", "value1")
	ht.Set("field2", "value2")
	ht.Set("field3", "value3")

	values := ht.Values()
	if len(values) != 3 {
		t.Errorf("Expected 3 values, got %d", len(values))
	}

	expectedValues := map[string]bool{
		"value1": true,
		"value2": true,
		"value3": true,
	}

	for _, value := range values {
		if !expectedValues[value] {
			t.Errorf("Unexpected value: %s", value)
		}
		delete(expectedValues, value)
	}

	if len(expectedValues) != 0 {
		t.Errorf("Missing values: %v", expectedValues)
	}
}

func TestHashTableKeysWalkChains(t *testing.T) {
	ht, err := NewWithCapacity(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < 20; i++ {
		ht.Set("key"+strconv.Itoa(i), strconv.Itoa(i))
	}

	keys := ht.Keys()
	if len(keys) != 20 {
		t.Errorf("Expected 20 keys across 2 buckets, got %d", len(keys))
	}

	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			t.Errorf("Duplicate key in Keys result: %s", key)
		}
		seen[key] = true
	}
}

func TestHashTableStats(t *testing.T) {
	ht, err := NewWithCapacity(4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats := ht.Stats()
	if stats.Count != 0 || stats.Capacity != 4 {
		t.Errorf("Expected empty stats with capacity 4, got %+v", stats)
	}
	if stats.EmptyBuckets != 4 {
		t.Errorf("Expected 4 empty buckets, got %d", stats.EmptyBuckets)
	}
	if stats.MaxChainLen != 0 {
		t.Errorf("Expected max chain 0, got %d", stats.MaxChainLen)
	}

	single, err := NewWithCapacity(1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	single.Set("a", "1")
	single.Set("b", "2")
	single.Set("c", "3")

	stats = single.Stats()
	if stats.Count != 3 {
		t.Errorf("Expected count 3, got %d", stats.Count)
	}
	if stats.MaxChainLen != 3 {
		t.Errorf("Expected max chain 3, got %d", stats.MaxChainLen)
	}
	if stats.EmptyBuckets != 0 {
		t.Errorf("Expected 0 empty buckets, got %d", stats.EmptyBuckets)
	}
	if stats.LoadFactor != 3.0 {
		t.Errorf("Expected load factor 3.0, got %f", stats.LoadFactor)
	}
}
