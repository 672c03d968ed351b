package constants

// DocumentRole identifies which side of the three-way match a document plays.
type DocumentRole string

// Stable values (these exact strings appear in reports and exports).
const (
	RoleContract    DocumentRole = "CONTRACT"
	RoleCertificate DocumentRole = "CERTIFICATE" // berita acara
	RoleInvoice     DocumentRole = "INVOICE"
)

// Roles lists the three roles in reporting order.
var Roles = []DocumentRole{RoleContract, RoleCertificate, RoleInvoice}
