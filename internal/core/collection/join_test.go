package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kena741/lolelink-admin/internal/core/domain"
)

func subcat(id, categoryID, name string) domain.SubCategory {
	return domain.SubCategory{ID: id, CategoryID: categoryID, Name: name}
}

func TestCountByKey(t *testing.T) {
	subs := []domain.SubCategory{
		subcat("s1", "cat1", "Sofa"),
		subcat("s2", "cat1", "Carpet"),
		subcat("s3", "cat2", "Pipes"),
	}
	counts := CountByKey(subs, func(s domain.SubCategory) string { return s.CategoryID })
	assert.Equal(t, 2, counts["cat1"])
	assert.Equal(t, 1, counts["cat2"])
	assert.Equal(t, 0, counts["cat3"], "absent parent counts as zero")
}

func TestFilterByKey_PreservesOrder(t *testing.T) {
	subs := []domain.SubCategory{
		subcat("s1", "cat1", "Sofa"),
		subcat("s2", "cat2", "Pipes"),
		subcat("s3", "cat1", "Carpet"),
	}
	got := FilterByKey(subs, func(s domain.SubCategory) string { return s.CategoryID }, "cat1")
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, "s3", got[1].ID)
}

func TestFilterByKey_NoMatchesYieldsEmptyNotNil(t *testing.T) {
	got := FilterByKey(nil, func(s domain.SubCategory) string { return s.CategoryID }, "cat1")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGroupByKey_FirstSeenOrder(t *testing.T) {
	docs := []domain.Document{
		{ID: "d1", ProviderID: "p2", ProviderName: "Beta Fix"},
		{ID: "d2", ProviderID: "p1", ProviderName: "Acme Repairs"},
		{ID: "d3", ProviderID: "p2", ProviderName: "Beta Fix"},
		{ID: "d4", ProviderID: "p3", ProviderName: "Gamma Co"},
	}
	groups := GroupByKey(docs, func(d domain.Document) string { return d.ProviderID })
	require.Len(t, groups, 3)

	// Groups appear in first-seen order of their key.
	assert.Equal(t, "p2", groups[0].Key)
	assert.Equal(t, "p1", groups[1].Key)
	assert.Equal(t, "p3", groups[2].Key)

	// Items keep input order inside each group.
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "d1", groups[0].Items[0].ID)
	assert.Equal(t, "d3", groups[0].Items[1].ID)
}

func TestGroupByKey_EmptyInput(t *testing.T) {
	groups := GroupByKey(nil, func(d domain.Document) string { return d.ProviderID })
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
