// Package tenantstore persists tenant metadata records in a
// DynamoDB-compatible table.
//
// The table is keyed by tenant_id and the only operation this service
// performs is a conditional create: every write asserts the id does not
// already exist, giving exactly-once-insert semantics without any in-process
// locking. Concurrency control belongs entirely to the storage service.
package tenantstore
