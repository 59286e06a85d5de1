//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLIntegrator runs the integrate+reflect step for a flattened particle
// batch on an OpenCL device. Jitter and the demon sort stay on the host so the
// random source keeps a single owner.
type openCLIntegrator struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	stateBuf   *cl.MemObject
	lobeBuf    *cl.MemObject
	capacity   int
	deviceName string
}

const integrateKernelSource = `__kernel void integrate_particles(
    const int count,
    const float dt,
    const float eps,
    __global float4* state,
    __global const float4* lobe)
{
    int i = get_global_id(0);
    if (i >= count) {
        return;
    }
    float4 s = state[i];
    float4 l = lobe[i];
    s.x += s.z * dt;
    s.y += s.w * dt;
    float dx = s.x - l.x;
    float dy = s.y - l.y;
    float dist = sqrt(dx * dx + dy * dy);
    if (dist + l.w > l.z && dist > eps) {
        float nx = dx / dist;
        float ny = dy / dist;
        float dot = s.z * nx + s.w * ny;
        s.z -= 2.0f * dot * nx;
        s.w -= 2.0f * dot * ny;
        s.x = l.x + nx * (l.z - l.w);
        s.y = l.y + ny * (l.z - l.w);
    }
    state[i] = s;
}`

func newOpenCLIntegrator() (*openCLIntegrator, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{integrateKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("integrate_particles")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	return &openCLIntegrator{
		context:    context,
		queue:      queue,
		program:    program,
		kernel:     kernel,
		deviceName: device.Name(),
	}, nil
}

// ensureCapacity (re)allocates the device buffers when the batch outgrows
// them.
func (s *openCLIntegrator) ensureCapacity(count int) error {
	if count <= s.capacity && s.stateBuf != nil {
		return nil
	}
	if s.stateBuf != nil {
		s.stateBuf.Release()
		s.stateBuf = nil
	}
	if s.lobeBuf != nil {
		s.lobeBuf.Release()
		s.lobeBuf = nil
	}
	byteSize := count * batchStateStride * int(unsafe.Sizeof(float32(0)))
	stateBuf, err := s.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize)
	if err != nil {
		return fmt.Errorf("allocating state buffer: %w", err)
	}
	lobeBuf, err := s.context.CreateEmptyBuffer(cl.MemReadOnly, byteSize)
	if err != nil {
		stateBuf.Release()
		return fmt.Errorf("allocating lobe buffer: %w", err)
	}
	s.stateBuf = stateBuf
	s.lobeBuf = lobeBuf
	s.capacity = count
	return nil
}

// Integrate uploads the batch, runs the kernel, and reads the integrated
// state back into the batch buffers.
func (s *openCLIntegrator) Integrate(batch *particleBatch, dt float64) error {
	count := batch.size()
	if count == 0 {
		return nil
	}
	if err := s.ensureCapacity(count); err != nil {
		return err
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.stateBuf, false, 0, batch.state, nil); err != nil {
		return fmt.Errorf("writing state buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.lobeBuf, false, 0, batch.lobe, nil); err != nil {
		return fmt.Errorf("writing lobe buffer: %w", err)
	}
	if err := s.kernel.SetArgs(
		int32(count),
		float32(dt),
		float32(reflectEpsilon),
		s.stateBuf,
		s.lobeBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{count}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.stateBuf, true, 0, batch.state, nil); err != nil {
		return fmt.Errorf("reading state buffer: %w", err)
	}
	return nil
}

func (s *openCLIntegrator) Close() {
	if s.lobeBuf != nil {
		s.lobeBuf.Release()
		s.lobeBuf = nil
	}
	if s.stateBuf != nil {
		s.stateBuf.Release()
		s.stateBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLIntegrator) DeviceName() string {
	return s.deviceName
}
