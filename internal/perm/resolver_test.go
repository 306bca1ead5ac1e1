package perm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roomwatch/roomwatch/internal/db/models"
	"github.com/roomwatch/roomwatch/internal/roles"
)

// testRole builds a role with every flag unset and the timeout inherited,
// then applies the given flag states.
func testRole(id string, position int, states map[models.PermissionFlag]models.PermissionState) models.Role {
	r := models.Role{
		ID:             id,
		RoomID:         "room-1",
		Name:           "role-" + id,
		Position:       position,
		Permissions:    models.UniformSet(models.PermUnset),
		MessageTimeout: models.TimeoutInherit,
	}

	for flag, state := range states {
		r.Permissions.Set(flag, state)
	}

	return r
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		roles    []models.Role
		flag     models.PermissionFlag
		expected bool
	}{
		{
			name:     "no roles denies",
			roles:    nil,
			flag:     models.FlagRoomView,
			expected: false,
		},
		{
			name: "all unset denies",
			roles: []models.Role{
				testRole("a", 0, nil),
				testRole("b", 1, nil),
			},
			flag:     models.FlagRoomView,
			expected: false,
		},
		{
			name: "single allow wins",
			roles: []models.Role{
				testRole("a", 0, map[models.PermissionFlag]models.PermissionState{
					models.FlagMessageCreate: models.PermAllowed,
				}),
			},
			flag:     models.FlagMessageCreate,
			expected: true,
		},
		{
			name: "lower position overrides higher",
			roles: []models.Role{
				testRole("low", 0, map[models.PermissionFlag]models.PermissionState{
					models.FlagMessageCreate: models.PermForbidden,
				}),
				testRole("high", 1, map[models.PermissionFlag]models.PermissionState{
					models.FlagMessageCreate: models.PermAllowed,
				}),
			},
			flag:     models.FlagMessageCreate,
			expected: false,
		},
		{
			name: "input order does not matter",
			roles: []models.Role{
				testRole("high", 1, map[models.PermissionFlag]models.PermissionState{
					models.FlagMessageCreate: models.PermAllowed,
				}),
				testRole("low", 0, map[models.PermissionFlag]models.PermissionState{
					models.FlagMessageCreate: models.PermForbidden,
				}),
			},
			flag:     models.FlagMessageCreate,
			expected: false,
		},
		{
			name: "unset role is skipped",
			roles: []models.Role{
				testRole("low", 0, nil),
				testRole("high", 5, map[models.PermissionFlag]models.PermissionState{
					models.FlagRoleCreate: models.PermAllowed,
				}),
			},
			flag:     models.FlagRoleCreate,
			expected: true,
		},
		{
			name: "equal position ties break by id",
			roles: []models.Role{
				testRole("b", 3, map[models.PermissionFlag]models.PermissionState{
					models.FlagTitleUpdate: models.PermAllowed,
				}),
				testRole("a", 3, map[models.PermissionFlag]models.PermissionState{
					models.FlagTitleUpdate: models.PermForbidden,
				}),
			},
			flag:     models.FlagTitleUpdate,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.roles, tc.flag))
		})
	}
}

// An administrator's unset room_delete falls through to Everyone's
// explicit deny instead of an ambiguous outcome.
func TestResolveAdministratorCannotDeleteRoom(t *testing.T) {
	set := []models.Role{
		roles.Administrator("room-1"),
		roles.Everyone("room-1"),
	}

	assert.False(t, Resolve(set, models.FlagRoomDelete))
	assert.True(t, Resolve(set, models.FlagTitleUpdate))
	assert.True(t, Resolve(set, models.FlagMessageCreate))
}

func TestResolveTimeout(t *testing.T) {
	explicit := func(id string, position, seconds int) models.Role {
		r := testRole(id, position, nil)
		r.MessageTimeout = models.Timeout(seconds)

		return r
	}

	testCases := []struct {
		name     string
		roles    []models.Role
		expected int
	}{
		{
			name:     "no roles falls open to zero",
			roles:    nil,
			expected: 0,
		},
		{
			name: "all inherit falls open to zero",
			roles: []models.Role{
				testRole("a", 0, nil),
				testRole("b", 1, nil),
			},
			expected: 0,
		},
		{
			name: "first explicit wins",
			roles: []models.Role{
				testRole("a", 0, nil),
				explicit("b", 1, 5),
				explicit("c", 2, 30),
			},
			expected: 5,
		},
		{
			name: "explicit zero shadows later values",
			roles: []models.Role{
				explicit("a", 0, 0),
				explicit("b", 1, 30),
			},
			expected: 0,
		},
		{
			name: "position order decides, not input order",
			roles: []models.Role{
				explicit("high", 9, 30),
				explicit("low", 1, 3),
			},
			expected: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveTimeout(tc.roles))
		})
	}
}

func TestResolveAll(t *testing.T) {
	set := []models.Role{
		testRole("member", 10, map[models.PermissionFlag]models.PermissionState{
			models.FlagMessageCreate: models.PermAllowed,
			models.FlagTitleUpdate:    models.PermForbidden,
		}),
		roles.Everyone("room-1"),
	}

	eff := ResolveAll(set)

	// every flag agrees with single-flag resolution
	for _, flag := range models.Flags {
		assert.Equal(t, Resolve(set, flag), eff.Allows(flag), "flag %s", flag)
	}

	assert.Equal(t, ResolveTimeout(set), eff.MessageTimeout())

	// the vector is a copy, mutating it does not affect the resolved set
	vector := eff.Vector()
	assert.Len(t, vector, len(models.Flags))

	vector[models.FlagRoomView] = !vector[models.FlagRoomView]
	assert.NotEqual(t, vector[models.FlagRoomView], eff.Allows(models.FlagRoomView))
}

func TestSortRolesDoesNotMutateInput(t *testing.T) {
	input := []models.Role{
		testRole("b", 2, nil),
		testRole("a", 1, nil),
	}

	sorted := sortRoles(input)

	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", input[0].ID)
}
