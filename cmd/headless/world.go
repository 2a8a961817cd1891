package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/platformer/prefabs"
	"github.com/spf13/cobra"
)

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "List the surfaces of a world",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadWorld(flagWorld)
		if err != nil {
			return err
		}
		reg, styles := spec.Registry()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d surfaces, tick %v\n", spec.Name, reg.Len(), spec.TickDuration())
		for _, style := range styles {
			s := reg.Get(style.Handle)
			bb := s.Box()
			fmt.Fprintf(out, "  %d %-10s L=%g B=%g R=%g T=%g floor=%v\n", style.Handle, style.Name, bb.L, bb.B, bb.R, bb.T, s.FloorCapable)
		}
		return nil
	},
}

// loadWorld reads name from disk when it is an existing file, otherwise as a
// prefab.
func loadWorld(name string) (*prefabs.WorldSpec, error) {
	if name == "" {
		name = prefabs.DefaultWorld
	}
	if data, err := os.ReadFile(name); err == nil {
		spec, err := prefabs.ParseWorldSpec(data)
		if err != nil {
			return nil, fmt.Errorf("world %s: %w", filepath.Base(name), err)
		}
		return spec, nil
	}
	return prefabs.LoadWorldSpec(name)
}

func loadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", name, err)
	}
	return src, nil
}
