package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/shared"
	"atrium/shared/constant"
	"atrium/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 5, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))

	val := shared.ConvertStringToBool("true")
	assert.NotNil(t, val)
	assert.True(t, *val)
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name     string `db:"name"`
		Capacity *int   `db:"capacity"`
		Ignored  string
	}

	capacity := 4
	fields := shared.TransformFields(update{Name: "Deluxe", Capacity: &capacity}, "someone")

	assert.Equal(t, "Deluxe", fields["name"])
	assert.Equal(t, &capacity, fields["capacity"])
	assert.Equal(t, "someone", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, "Ignored")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(42), "id", "rooms")
	where, args := group.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, int64(42), args["id"])
}

func TestBuildCacheKeyWithQueryIsDeterministic(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: int64(1), Table: "bookings"},
			dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: int64(2), Table: "bookings"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	for range 20 {
		assert.Equal(t, first, shared.BuildCacheKeyWithQuery("booking:gets", params, filter))
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:user:7", shared.BuildCacheKey("booking", "user", "7"))
}
