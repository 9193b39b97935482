package models

const (
	RoleTechnician = "technician"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// DefaultRole is assigned when signup omits an explicit role.
const DefaultRole = RoleTechnician
