package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProject_Flat(t *testing.T) {
	b := Project(map[string]any{
		"title": "Bike",
		"price": 100,
		"used":  true,
		"note":  nil,
	})

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, []string{"note", "price", "title", "used"}, b.Keys())

	title, ok := b.String("title")
	require.True(t, ok)
	assert.Equal(t, "Bike", title)

	price, ok := b.Get("price")
	require.True(t, ok)
	assert.Equal(t, 100, price)

	note, ok := b.Get("note")
	assert.True(t, ok)
	assert.Nil(t, note)
}

func TestProject_Nested(t *testing.T) {
	b := Project(map[string]any{
		"title": "iPhone X",
		"location": map[string]any{
			"address": "город Самара, улица Мориса Тореза, 50",
			"metro_stations": []any{
				"Спортивная",
				"Гагаринская",
			},
			"coords": map[string]any{
				"lat": 53.2,
				"lon": 50.1,
			},
		},
	})

	loc, ok := b.Bag("location")
	require.True(t, ok, "nested mapping must become a bag")

	addr, ok := loc.String("address")
	require.True(t, ok)
	assert.Equal(t, "город Самара, улица Мориса Тореза, 50", addr)

	stations, ok := loc.Get("metro_stations")
	require.True(t, ok)
	assert.Equal(t, []any{"Спортивная", "Гагаринская"}, stations)

	coords, ok := loc.Bag("coords")
	require.True(t, ok)

	lat, ok := coords.Get("lat")
	require.True(t, ok)
	assert.InDelta(t, 53.2, lat, 1e-9)
}

func TestProject_OtherMapShapes(t *testing.T) {
	b := Project(map[string]any{
		"legacy":  map[any]any{"a": 1, 2: "two"},
		"strings": map[string]string{"k": "v"},
	})

	legacy, ok := b.Bag("legacy")
	require.True(t, ok)
	assert.Equal(t, []string{"2", "a"}, legacy.Keys())

	strs, ok := b.Bag("strings")
	require.True(t, ok)

	v, ok := strs.String("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestProject_ReservedKeys(t *testing.T) {
	b := Project(map[string]any{
		"title": "Bike",
		"class": "road",
		"type":  "sport",
		"nested": map[string]any{
			"for": "kids",
		},
	})

	assert.False(t, b.Has("class"))

	class, ok := b.String("class_")
	require.True(t, ok)
	assert.Equal(t, "road", class)

	kind, ok := b.String("type_")
	require.True(t, ok)
	assert.Equal(t, "sport", kind)

	v, ok := b.Lookup("nested.for_")
	require.True(t, ok)
	assert.Equal(t, "kids", v)
}

func TestProject_DoesNotAliasInput(t *testing.T) {
	tags := []any{"a", "b"}
	inner := map[string]any{"city": "Samara"}
	in := map[string]any{"tags": tags, "location": inner}

	b := Project(in)

	tags[0] = "changed"
	inner["city"] = "Moscow"
	in["extra"] = 1

	v, _ := b.Get("tags")
	assert.Equal(t, []any{"a", "b"}, v)

	city, _ := b.Lookup("location.city")
	assert.Equal(t, "Samara", city)
	assert.False(t, b.Has("extra"))
}

func TestProjectNode_KeepsDocumentOrder(t *testing.T) {
	src := `{"title": "Bike", "price": 100, "class": "road", "location": {"city": "Samara", "address": "x"}}`

	var doc yaml.Node

	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	b, err := ProjectNode(&doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "price", "class_", "location"}, b.Keys())

	loc, ok := b.Bag("location")
	require.True(t, ok)
	assert.Equal(t, []string{"city", "address"}, loc.Keys())

	price, _ := b.Get("price")
	assert.Equal(t, 100, price)
}

func TestProjectNode_AliasesAndMerge(t *testing.T) {
	src := `
base: &base
  currency: RUB
  city: Samara
item:
  <<: *base
  city: Moscow
  title: Bike
copy: *base
`

	var doc yaml.Node

	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	b, err := ProjectNode(&doc)
	require.NoError(t, err)

	item, ok := b.Bag("item")
	require.True(t, ok)
	assert.Equal(t, []string{"currency", "city", "title"}, item.Keys())

	city, _ := item.String("city")
	assert.Equal(t, "Moscow", city)

	cp, ok := b.Bag("copy")
	require.True(t, ok)

	city, _ = cp.String("city")
	assert.Equal(t, "Samara", city)
}

func TestProjectNode_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"scalar root", `42`},
		{"sequence root", `[1, 2]`},
		{"empty document", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc yaml.Node

			require.NoError(t, yaml.Unmarshal([]byte(tt.src), &doc))

			_, err := ProjectNode(&doc)
			assert.Error(t, err)
		})
	}
}
