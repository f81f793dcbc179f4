// Package persistence stores artifact history with GORM on sqlite, postgres or mysql.
package persistence
