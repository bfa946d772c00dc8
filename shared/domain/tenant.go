package domain

// Tenant is the resolved identity attached to every request by the auth
// middleware. AdvisorId identifies the advisor within the tenant; the engine
// itself only cares about Id.
type Tenant struct {
	Id        TenantId
	AdvisorId string
}
