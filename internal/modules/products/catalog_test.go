package products

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioProducts() []Product {
	return []Product{
		{ID: "1", Name: "Gübre A", Category: "Katı Ürünler", Price: 150},
		{ID: "2", Name: "Sprey B", Category: "Sıvı Ürünler", Price: 80},
	}
}

func TestFilter_Scenario(t *testing.T) {
	got := Filter(scenarioProducts(), "GÜBRE")

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	buckets := Group(got)
	require.Len(t, buckets, 4)
	assert.Equal(t, "Katı Ürünler", buckets[0].Label())
	assert.Equal(t, 1, buckets[0].Count())
	assert.Equal(t, "Sıvı Ürünler", buckets[1].Label())
	assert.Equal(t, 0, buckets[1].Count())

	all := Group(scenarioProducts())
	require.Len(t, all[1].Items, 1)
	assert.Equal(t, "Sprey B", all[1].Items[0].Name)
}

func TestFilter_EmptyQueryReturnsInput(t *testing.T) {
	in := scenarioProducts()
	assert.Equal(t, in, Filter(in, ""))
	assert.Equal(t, in, Filter(in, "   "))
}

func TestFilter_MatchesDescriptionAndCategory(t *testing.T) {
	in := []Product{
		{ID: "a", Name: "X", Description: "Damla sulama için"},
		{ID: "b", Name: "Y", Category: "Sıvı Ürünler"},
		{ID: "c", Name: "Z"},
	}

	got := Filter(in, "sulama")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	got = Filter(in, "sıvı")
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	assert.Empty(t, Filter(in, "yok-boyle-bir-sey"))
}

func TestFilter_SubsetAndMatchProperty(t *testing.T) {
	in := sampleList(40)
	for _, q := range []string{"a", "ürün", "7", "KATI", "sıvı", "x", " 1 "} {
		got := Filter(in, q)
		assert.LessOrEqual(t, len(got), len(in))

		ids := map[string]bool{}
		for _, p := range in {
			ids[p.ID] = true
		}
		needle := strings.ToLower(strings.TrimSpace(q))
		for _, p := range got {
			assert.True(t, ids[p.ID], "result %s not in input", p.ID)
			hay := strings.ToLower(p.Name + "\x00" + p.Category + "\x00" + p.Description)
			assert.Contains(t, hay, needle)
		}
	}
}

func TestGroup_Partitions(t *testing.T) {
	in := sampleList(50)
	buckets := Group(in)

	require.Len(t, buckets, len(Categories)+1)
	assert.Equal(t, Unclassified, buckets[len(buckets)-1].Category)

	total := 0
	seen := map[string]int{}
	for _, b := range buckets {
		total += b.Count()
		for _, p := range b.Items {
			seen[p.ID]++
			assert.Equal(t, b.Category, p.Bucket())
		}
	}
	assert.Equal(t, len(in), total)
	for _, p := range in {
		assert.Equal(t, 1, seen[p.ID], "product %s", p.ID)
	}
}

func TestGroup_KeepsOrderAndEmptyBuckets(t *testing.T) {
	in := []Product{
		{ID: "3", Category: "Damlama Ürünleri"},
		{ID: "2", Category: ""},
		{ID: "1", Category: "Damlama Ürünleri"},
		{ID: "0", Category: "Diğer"},
	}
	buckets := Group(in)

	assert.Empty(t, buckets[0].Items)
	assert.NotNil(t, buckets[0].Items)
	assert.Empty(t, buckets[1].Items)
	assert.Equal(t, []string{"3", "1"}, ids(buckets[2].Items))
	assert.Equal(t, []string{"2", "0"}, ids(buckets[3].Items))
}

func TestGroup_Empty(t *testing.T) {
	buckets := Group(nil)
	require.Len(t, buckets, 4)
	for _, b := range buckets {
		assert.Zero(t, b.Count())
	}
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, Solid, ParseCategory("Katı Ürünler"))
	assert.Equal(t, Liquid, ParseCategory(" Sıvı Ürünler "))
	assert.Equal(t, Drip, ParseCategory("Damlama Ürünleri"))
	assert.Equal(t, Unclassified, ParseCategory(""))
	assert.Equal(t, Unclassified, ParseCategory("Diğer"))
	assert.Equal(t, Unclassified, ParseCategory("katı ürünler"))
	assert.False(t, Unclassified.Recognized())
	assert.Equal(t, []string{"Katı Ürünler", "Sıvı Ürünler", "Damlama Ürünleri"}, CategoryLabels())
}

func TestFindByID(t *testing.T) {
	in := scenarioProducts()

	p, ok := FindByID(in, "2")
	require.True(t, ok)
	assert.Equal(t, "Sprey B", p.Name)

	p.Name = "changed"
	assert.Equal(t, "Sprey B", in[1].Name)

	_, ok = FindByID(in, "")
	assert.False(t, ok)
	_, ok = FindByID(in, "9")
	assert.False(t, ok)
}

func sampleList(n int) []Product {
	cats := []string{"Katı Ürünler", "Sıvı Ürünler", "Damlama Ürünleri", "", "Tohum"}
	out := make([]Product, 0, n)
	for i := 0; i < n; i++ {
		p := Product{
			ID:       fmt.Sprintf("id-%d", i),
			Name:     fmt.Sprintf("Ürün %d", i),
			Category: cats[i%len(cats)],
		}
		if i%3 == 0 {
			p.Description = fmt.Sprintf("açıklama %d xa", i)
		}
		out = append(out, p)
	}
	return out
}

func ids(items []Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}
