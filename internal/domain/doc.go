// Package domain contains the board, list, card, comment and activity
// entities together with their validation rules and partial-update patches.
// It has no knowledge of storage or transport.
package domain
