package domain

type UserRole string

const (
	RoleDishwasher     UserRole = "dishwasher"
	RolePrepCook       UserRole = "prep_cook"
	RoleLineCook       UserRole = "line_cook"
	RoleCook           UserRole = "cook"
	RoleSousChef       UserRole = "sous_chef"
	RoleKitchenManager UserRole = "kitchen_manager"
	RoleGeneralManager UserRole = "general_manager"
	RoleAdmin          UserRole = "admin"
)

// roleLevels is an explicit total order over the role hierarchy. Prep and
// line cooks share a rank. The map, not declaration order, is authoritative.
var roleLevels = map[UserRole]int{
	RoleDishwasher:     0,
	RolePrepCook:       1,
	RoleLineCook:       1,
	RoleCook:           2,
	RoleSousChef:       3,
	RoleKitchenManager: 4,
	RoleGeneralManager: 5,
	RoleAdmin:          6,
}

// experienceLevels caps the order complexity a role may be trusted with.
// Roles without a dedicated ceiling (prep cook, managers above sous chef)
// default to 1: they are not expected to run a station.
var experienceLevels = map[UserRole]float64{
	RoleDishwasher:     2,
	RoleLineCook:       5,
	RoleCook:           7,
	RoleSousChef:       9,
	RoleKitchenManager: 10,
}

// User is a staff member as seen by the assignment and workflow rules.
type User struct {
	ID       string
	Name     string
	Role     UserRole
	IsActive bool
}

// Level returns the role's position in the hierarchy (0 = dishwasher).
func (r UserRole) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether the role ranks at or above other in the hierarchy.
func (r UserRole) AtLeast(other UserRole) bool {
	return roleLevels[r] >= roleLevels[other]
}

// ExperienceLevel returns the maximum order complexity the role may handle.
func (r UserRole) ExperienceLevel() float64 {
	if lvl, ok := experienceLevels[r]; ok {
		return lvl
	}
	return 1
}

// IsSeniorKitchenRole reports whether the role counts toward the senior
// skill-mix requirement for complex orders.
func (r UserRole) IsSeniorKitchenRole() bool {
	return r == RoleCook || r == RoleSousChef || r == RoleKitchenManager
}
