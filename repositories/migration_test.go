package repositories

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every column the repository queries name must exist in the schema the app
// migrates at boot. The repositories are stubbed everywhere else, so a
// drifted migration would only surface against a live database.
var repositoryColumns = map[string][]string{
	"users": {
		"id", "name", "email", "password", "cart_data", "created_at", "updated_at",
	},
	"products": {
		"id", "name", "description", "price", "images", "category",
		"sub_category", "sizes", "bestseller", "created_at",
	},
	"orders": {
		"id", "user_id", "items", "amount", "address", "status",
		"payment_method", "payment", "gateway_ref", "created_at", "updated_at",
	},
	"newsletter_subscribers": {
		"id", "email", "created_at",
	},
}

func loadInitMigration(t *testing.T) string {
	t.Helper()

	path := filepath.Join("..", "database", "migration", "000001_init.up.sql")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func createTableBlock(t *testing.T, schema, table string) string {
	t.Helper()

	re := regexp.MustCompile(`(?is)CREATE TABLE IF NOT EXISTS ` + table + `\s*\((.*?)\);`)
	match := re.FindStringSubmatch(schema)
	require.Len(t, match, 2, "migration must create table %s", table)
	return match[1]
}

func TestMigrationCoversRepositoryColumns(t *testing.T) {
	schema := loadInitMigration(t)

	for table, columns := range repositoryColumns {
		block := createTableBlock(t, schema, table)

		declared := map[string]bool{}
		for _, line := range strings.Split(block, ",") {
			fields := strings.Fields(strings.TrimSpace(line))
			if len(fields) > 0 {
				declared[strings.ToLower(fields[0])] = true
			}
		}

		for _, column := range columns {
			assert.True(t, declared[column], "table %s is missing column %s", table, column)
		}
	}
}

func TestMigrationDownDropsEveryTable(t *testing.T) {
	path := filepath.Join("..", "database", "migration", "000001_init.down.sql")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	down := string(raw)
	for table := range repositoryColumns {
		assert.Contains(t, down, "DROP TABLE IF EXISTS "+table, "down migration must drop %s", table)
	}
}
