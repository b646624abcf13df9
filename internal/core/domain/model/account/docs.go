// Package account provides the User aggregate backing API authentication.
//
// Accounts are registered Pending, become Active on their first login, and
// are soft-deleted to Inactive. Re-registering an Inactive username
// reactivates the existing account rather than creating a duplicate.
package account
