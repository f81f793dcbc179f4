// Package models contains the GORM models of the artifact history. They are kept
// apart from the domain entities and converted with ToDomain/FromDomain.
package models
