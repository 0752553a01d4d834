package main

import (
	"tcnursery/internal/domain/registers/hardening"
	"tcnursery/internal/domain/registers/incubation"
	"tcnursery/internal/domain/registers/inventory"
	"tcnursery/internal/domain/registers/media"
	"tcnursery/internal/domain/registers/sampling"
	"tcnursery/internal/domain/registers/subculture"
	"tcnursery/internal/domain/registers/supplier"
	"tcnursery/internal/metadata"
)

// setupMetadataRegistry initializes and populates the metadata registry.
func setupMetadataRegistry() *metadata.Registry {
	reg := metadata.NewRegistry()

	// --- Registers ---
	{
		def := metadata.FromDefinition(media.Definition(), metadata.TypeRegister)
		def.Require("date", "mediaName")
		reg.Register(def)
	}
	{
		def := metadata.FromDefinition(incubation.Definition(), metadata.TypeRegister)
		def.Require("date", "cropName")
		reg.Register(def)
	}
	{
		def := metadata.FromDefinition(subculture.Definition(), metadata.TypeRegister)
		def.Require("date", "cropName", "stage")
		def.Enum("stage",
			string(subculture.StageInitiation),
			string(subculture.StageMultiplication),
			string(subculture.StageRooting),
		)
		reg.Register(def)
	}
	{
		def := metadata.FromDefinition(sampling.Definition(), metadata.TypeRegister)
		def.Require("date", "cropName", "batchNumber")
		def.Enum("status",
			string(sampling.StatusReceived),
			string(sampling.StatusTesting),
			string(sampling.StatusPassed),
			string(sampling.StatusFailed),
		)
		reg.Register(def)
	}
	{
		def := metadata.FromDefinition(hardening.Definition(), metadata.TypeRegister)
		def.Require("date", "stage", "cropName")
		def.Enum("stage", string(hardening.StagePrimary), string(hardening.StageSecondary))
		reg.Register(def)
	}
	{
		def := metadata.FromDefinition(inventory.Definition(), metadata.TypeRegister)
		def.Require("date", "itemName", "category", "direction", "unit")
		def.Enum("direction", string(inventory.DirectionIn), string(inventory.DirectionOut))
		reg.Register(def)
	}

	// --- Directories ---
	{
		def := metadata.FromDefinition(supplier.Definition(), metadata.TypeDirectory)
		def.Require("name", "category")
		reg.Register(def)
	}

	return reg
}
