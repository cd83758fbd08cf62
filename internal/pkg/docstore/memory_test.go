package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Set(ctx, "employees", "e1", map[string]interface{}{
		"firstName": "Claire",
		"payslips":  []string{},
	})
	require.NoError(t, err)

	doc, err := store.Get(ctx, "employees", "e1")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, doc.Decode(&decoded))
	assert.Equal(t, "Claire", decoded["firstName"])
}

func TestMemoryStore_GetMissing(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), "employees", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "payslips", "p1", map[string]interface{}{
		"status": "Généré",
		"year":   2025,
	}))
	require.NoError(t, store.Update(ctx, "payslips", "p1", map[string]interface{}{
		"status": "Envoyé",
	}))

	doc, err := store.Get(ctx, "payslips", "p1")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, doc.Decode(&decoded))
	assert.Equal(t, "Envoyé", decoded["status"])
	assert.Equal(t, float64(2025), decoded["year"])
}

func TestMemoryStore_UpdateMissing(t *testing.T) {
	err := NewMemoryStore().Update(context.Background(), "payslips", "nope", map[string]interface{}{"status": "Envoyé"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_QueryFilters(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "payslips", "p1", map[string]interface{}{"employeeId": "e1", "year": 2025}))
	require.NoError(t, store.Set(ctx, "payslips", "p2", map[string]interface{}{"employeeId": "e1", "year": 2024}))
	require.NoError(t, store.Set(ctx, "payslips", "p3", map[string]interface{}{"employeeId": "e2", "year": 2025}))

	docs, err := store.Query(ctx, "payslips", Filter{Field: "employeeId", Value: "e1"})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = store.Query(ctx, "payslips",
		Filter{Field: "employeeId", Value: "e1"},
		Filter{Field: "year", Value: 2025},
	)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "p1", docs[0].ID)

	docs, err = store.Query(ctx, "payslips", Filter{Field: "employeeId", Value: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStore_ArrayUnionIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "employees", "e1", map[string]interface{}{"payslips": []string{}}))

	require.NoError(t, store.ArrayUnion(ctx, "employees", "e1", "payslips", "p1"))
	require.NoError(t, store.ArrayUnion(ctx, "employees", "e1", "payslips", "p1"))
	require.NoError(t, store.ArrayUnion(ctx, "employees", "e1", "payslips", "p2"))

	doc, err := store.Get(ctx, "employees", "e1")
	require.NoError(t, err)

	var decoded struct {
		Payslips []string `json:"payslips"`
	}
	require.NoError(t, doc.Decode(&decoded))
	assert.Equal(t, []string{"p1", "p2"}, decoded.Payslips)
}

func TestMemoryStore_ArrayUnionMissingDocument(t *testing.T) {
	err := NewMemoryStore().ArrayUnion(context.Background(), "employees", "nope", "payslips", "p1")
	assert.ErrorIs(t, err, ErrNotFound)
}
