//go:build !opencl

package main

import "errors"

type openCLIntegrator struct{}

func newOpenCLIntegrator() (*openCLIntegrator, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLIntegrator) Integrate(batch *particleBatch, dt float64) error {
	return errors.New("OpenCL integrator unavailable")
}

func (s *openCLIntegrator) Close() {}

func (s *openCLIntegrator) DeviceName() string { return "" }
