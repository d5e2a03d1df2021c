package constvars

const (
	EventShiftCreated      = "shift.created"
	EventShiftDeleted      = "shift.deleted"
	EventShiftsBulkCreated = "shift.bulk_created"
	EventShiftsBulkDeleted = "shift.bulk_deleted"
	EventRotationsExpanded = "rotation.materialized"
)
