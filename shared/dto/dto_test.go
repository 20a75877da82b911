package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/shared/dto"
)

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "room_id",
				Operator: dto.FilterOperatorEq,
				Value:    int64(7),
				Table:    "bookings",
			},
			wantWhere: "bookings.room_id = :room_id",
			wantArgs:  map[string]any{"room_id": int64(7)},
		},
		{
			name: "not eq excludes a row",
			filter: dto.Filter{
				Field:    "id",
				Operator: dto.FilterOperatorNotEq,
				Value:    int64(3),
				Table:    "bookings",
			},
			wantWhere: "bookings.id != :id",
			wantArgs:  map[string]any{"id": int64(3)},
		},
		{
			name: "like lowercases both sides",
			filter: dto.Filter{
				Field:    "name",
				Operator: dto.FilterOperatorLike,
				Value:    "suite",
				Table:    "rooms",
			},
			wantWhere: "LOWER(rooms.name) LIKE LOWER(:name) ",
			wantArgs:  map[string]any{"name": "%suite%"},
		},
		{
			name: "in expands slice values",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorIn,
				Value:    []string{"RESERVED", "PAID"},
				Table:    "tickets",
			},
			wantWhere: "tickets.status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "RESERVED", "status_1": "PAID"},
		},
		{
			name: "custom arg name avoids collisions",
			filter: dto.Filter{
				ArgName:  "booking_user",
				Field:    "user_id",
				Operator: dto.FilterOperatorEq,
				Value:    int64(11),
				Table:    "bookings",
			},
			wantWhere: "bookings.user_id = :booking_user",
			wantArgs:  map[string]any{"booking_user": int64(11)},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "id",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: int64(5), Table: "bookings"},
			dto.Filter{Field: "id", Operator: dto.FilterOperatorNotEq, Value: int64(9), Table: "bookings", ArgName: "exclude_id"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.room_id = :room_id AND bookings.id != :exclude_id)", where)
	assert.Equal(t, map[string]any{"room_id": int64(5), "exclude_id": int64(9)}, args)
}

func TestFilterGroupDefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: int64(1), Table: "bookings"},
		},
	}

	where, _ := group.GetWhereClause()

	assert.Equal(t, "(bookings.user_id = :user_id)", where)
}

func TestFilterGroupEmpty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		withDefault bool
		want        dto.QueryParams
	}{
		{
			name:        "defaults applied",
			target:      "/v1/rooms",
			withDefault: true,
			want:        dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:        "explicit values",
			target:      "/v1/rooms?page=3&limit=25&sort_by=capacity&sort_dir=asc",
			withDefault: true,
			want:        dto.QueryParams{Page: 3, Limit: 25, SortBy: "capacity", SortDir: "ASC"},
		},
		{
			name:        "invalid numbers ignored",
			target:      "/v1/rooms?page=zero&limit=-4",
			withDefault: false,
			want:        dto.QueryParams{},
		},
		{
			name:        "invalid sort dir ignored",
			target:      "/v1/rooms?sort_dir=sideways",
			withDefault: false,
			want:        dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)

			q := dto.QueryParams{}
			q.FromRequest(r, tt.withDefault)

			assert.Equal(t, tt.want, q)
		})
	}
}
