package models

// Permission is an append-only grant record: PermissionFrom named
// PermissionTo as NameTo. It is a display/audit trail only and is never
// consulted when deciding item visibility.
type Permission struct {
	ID             string
	NameTo         string
	PermissionTo   string
	PermissionFrom string
}
