package models

// Tenant identifies the Clerk application a webhook delivery belongs to.
// It selects both the signing secret used for verification and the
// collection users are persisted into.
type Tenant string

const (
	// TenantMultiTenant is the default application shared by all customers.
	TenantMultiTenant Tenant = "multi_tenant"
	// TenantComgas is the dedicated Comgas application.
	TenantComgas Tenant = "comgas"
)

func (t Tenant) String() string {
	return string(t)
}
