package prepare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/schema"
)

const salesFixture = `AREA_EN,PROP_TYPE_EN,ROOMS_EN,PARKING,TRANS_VALUE,PROCEDURE_AREA,ACTUAL_AREA,INSTANCE_DATE
Dubai Marina,Unit,2 B/R,1,2500000,125,130,2025-03-15
Business Bay,Unit,Studio,0,900000,45,,
Jumeirah,Villa,4 B/R,1,8000000,0,420,2025-03-17
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestPrepareFile(t *testing.T) {
	path := writeFixture(t, "sales.csv", salesFixture)
	logger := &logging.MockLogger{}

	txs, err := PrepareFile(path, "sales", "", DefaultMetricParams(), logger)
	require.NoError(t, err)

	// The dateless Business Bay row is dropped; the zero-area row survives
	require.Len(t, txs, 2)
	assert.Equal(t, "Dubai Marina", txs[0].Area)
	assert.True(t, txs[0].MeterPrice.Valid)
	assert.True(t, txs[0].MeterPrice.Decimal.Equal(decimal.NewFromInt(20000)))

	assert.Equal(t, "Jumeirah", txs[1].Area)
	assert.False(t, txs[1].MeterPrice.Valid)
}

func TestPrepareFileWithRemappingProfile(t *testing.T) {
	// A YAML profile can point the sales parser at a dataset whose headers
	// were renamed; rows must come through, not silently drop
	profileDir := t.TempDir()
	profile := `name: sales
required:
  - price
  - area_sqm
  - district
  - kind
date_column: sold_on
columns:
  TRANS_VALUE: price
  PROCEDURE_AREA: area_sqm
  AREA_EN: district
  PROP_TYPE_EN: kind
  INSTANCE_DATE: sold_on
`
	require.NoError(t, os.WriteFile(filepath.Join(profileDir, "sales.yaml"), []byte(profile), 0600))

	csvData := `price,district,kind,area_sqm,sold_on
2500000,Dubai Marina,Unit,125,2025-03-15
`
	path := writeFixture(t, "renamed.csv", csvData)

	txs, err := PrepareFile(path, "sales", profileDir, DefaultMetricParams(), &logging.MockLogger{})
	require.NoError(t, err)
	require.NotEmpty(t, txs)

	assert.Equal(t, "Dubai Marina", txs[0].Area)
	require.True(t, txs[0].MeterPrice.Valid)
	assert.True(t, txs[0].MeterPrice.Decimal.Equal(decimal.NewFromInt(20000)))
}

func TestPrepareFileUnknownProfile(t *testing.T) {
	path := writeFixture(t, "sales.csv", salesFixture)

	_, err := PrepareFile(path, "mortgages", "", DefaultMetricParams(), &logging.MockLogger{})
	assert.Error(t, err)
}

func TestLoadMemoizesAndCopies(t *testing.T) {
	path := writeFixture(t, "sales.csv", salesFixture)
	sch, err := schema.Builtin("sales")
	require.NoError(t, err)
	logger := &logging.MockLogger{}

	first, err := Load(path, sch, logger)
	require.NoError(t, err)
	second, err := Load(path, sch, logger)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Mutating one load must not leak into the next
	first[0].Area = "Mutated"
	third, err := Load(path, sch, logger)
	require.NoError(t, err)
	assert.Equal(t, "Dubai Marina", third[0].Area)
}

func TestLoadDispatchesRentals(t *testing.T) {
	content := `Rent,Area_in_sqft,Location,Beds,Type,Posted_date
120000,850,dubai marina,1,Apartment,2025-04-01
`
	path := writeFixture(t, "rentals.csv", content)
	sch, err := schema.Builtin("rentals")
	require.NoError(t, err)

	txs, err := Load(path, sch, &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Dubai Marina", txs[0].Area)
}
