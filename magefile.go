//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the termimport binary.
func Build() error {
	return sh.Run("go", "build", "./cmd/termimport")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.Run("go", "vet", "./...")
}

// Test runs go vet and the full test suite.
func Test() error {
	mg.Deps(Vet)
	return sh.Run("go", "test", "./...")
}

// Install installs the termimport binary.
func Install() error {
	return sh.Run("go", "install", "./cmd/termimport")
}
