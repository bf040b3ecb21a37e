package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"reviewpulse/internal/etl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reviews.csv")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	return path
}

func TestCSVLoader_Load(t *testing.T) {
	exportCSV := `product_id,product_name,category,user_id,review_id,rating
P1,USB Cable,"Electronics,Cables","u1,u2","r1,r2",4.5
P2,Blender,Home,u3,r3,3.0
`
	loader := NewCSVLoader(writeExport(t, exportCSV))
	records, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "P1", records[0][etl.FieldProductID])
	assert.Equal(t, "USB Cable", records[0][etl.FieldProductName])
	assert.Equal(t, "Electronics,Cables", records[0][etl.FieldCategory])
	assert.Equal(t, "u1,u2", records[0][etl.FieldUserID])
	assert.Equal(t, "4.5", records[0][etl.FieldRating])
	assert.Equal(t, "P2", records[1][etl.FieldProductID])
}

func TestCSVLoader_Load_PadsShortRows(t *testing.T) {
	exportCSV := `product_id,product_name,rating
P1,USB Cable
`
	loader := NewCSVLoader(writeExport(t, exportCSV))
	records, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "P1", records[0][etl.FieldProductID])
	assert.Equal(t, "", records[0][etl.FieldRating])
}

func TestCSVLoader_Load_RejectsLongRows(t *testing.T) {
	exportCSV := `product_id,product_name
P1,USB Cable,extra
`
	loader := NewCSVLoader(writeExport(t, exportCSV))
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestCSVLoader_Load_MissingFile(t *testing.T) {
	loader := NewCSVLoader(filepath.Join(t.TempDir(), "absent.csv"))
	_, err := loader.Load()
	assert.Error(t, err)
}
