// Package config validates hydrated configuration before surfaces rely
// on it.
package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := cfg.ValidateConsistency(); err != nil {
		return err
	}
	if err := validateServer(cfg.Server); err != nil {
		return err
	}
	return nil
}

func validateServer(srv domain.ServerSettings) error {
	_, port, err := net.SplitHostPort(srv.Addr)
	if err != nil {
		return fmt.Errorf("server.addr invalid: %w", err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("server.addr port %q must be 1-65535", port)
	}
	return nil
}
