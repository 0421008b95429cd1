//go:build !linux && !darwin && !windows

package actuator

import (
	"errors"
	"runtime"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

const driverDescription = "unsupported platform driver"

var errUnsupported = errors.New("no automation driver for " + runtime.GOOS)

func probeTools() error { return errUnsupported }

func (d *Driver) osClick(x, y int, button domain.MouseButton) error { return errUnsupported }
func (d *Driver) osType(text string) error                          { return errUnsupported }
func (d *Driver) osKey(key string) error                            { return errUnsupported }
func (d *Driver) osCombo(first, second string) error                { return errUnsupported }
func (d *Driver) osScroll(direction string, amount int) error       { return errUnsupported }
func (d *Driver) osMove(x, y int) error                             { return errUnsupported }
func (d *Driver) osScreenshot(path string) error                    { return errUnsupported }
func (d *Driver) osScreenSize() (int, int, error)                   { return 0, 0, errUnsupported }
