// Package service contains the board, list, card, comment and activity use
// cases. It orchestrates the stores defined in internal/store and keeps every
// mutation and the activity entry describing it in one transaction.
//
// Services receive their dependencies through constructor injection and
// return *ServiceError values that wrap the store and domain sentinels, so
// the API layer maps them to status codes with errors.Is.
package service
