package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	otelMocks "atrium/infras/otel/mocks"
	"atrium/shared/dto"
	"atrium/shared/model"
)

type fixtureRow struct {
	ID     int64  `db:"id" insert:"-"`
	Name   string `db:"name"`
	RoomID int64  `db:"room_id"`
	model.Metadata
}

type fixtureJoinRow struct {
	ID       int64  `db:"id"`
	RoomName string `db:"room_name" table:"rooms" column:"name"`
}

func (fixtureJoinRow) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = fixtures.room_id"
}

func TestNewRepository(t *testing.T) {
	t.Run("excludes generated id from insert columns", func(t *testing.T) {
		repo := NewRepository[fixtureRow]("Fixture", "fixtures", "id", nil, otelMocks.NewOtel())

		assert.NotContains(t, repo.InsertColumns, "id")
		assert.Contains(t, repo.InsertColumns, "name")
		assert.Contains(t, repo.InsertColumns, "room_id")
		assert.Contains(t, repo.InsertColumns, "created_at")
	})

	t.Run("joined columns are excluded from insert columns", func(t *testing.T) {
		repo := NewRepository[fixtureJoinRow]("Fixture", "fixtures", "id", nil, otelMocks.NewOtel())

		assert.Equal(t, []string{"id"}, repo.InsertColumns)
		assert.Equal(t, "JOIN rooms ON rooms.id = fixtures.room_id", repo.join)
	})

	t.Run("aliased join column appears in select query", func(t *testing.T) {
		repo := NewRepository[fixtureJoinRow]("Fixture", "fixtures", "id", nil, otelMocks.NewOtel())

		selectQuery := repo.getSelectQuery(context.Background())

		assert.Contains(t, selectQuery, "fixtures.id")
		assert.Contains(t, selectQuery, "rooms.name AS room_name")
	})
}

func TestBuildWhereClause(t *testing.T) {
	repo := NewRepository[fixtureRow]("Fixture", "fixtures", "id", nil, otelMocks.NewOtel())

	t.Run("empty filter yields empty clause", func(t *testing.T) {
		where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{})

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("single filter yields where clause with args", func(t *testing.T) {
		filter := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: int64(7)},
			},
		}

		where, args := repo.BuildWhereClause(context.Background(), filter)

		assert.Contains(t, where, "WHERE")
		assert.Contains(t, where, "room_id")
		assert.Equal(t, int64(7), args["room_id"])
	})
}
