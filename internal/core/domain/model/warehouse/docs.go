// Package warehouse contains the Warehouse aggregate and its status state.
// Warehouses gate allocation eligibility: only agents and orders belonging
// to an Operational warehouse take part in a run.
package warehouse
