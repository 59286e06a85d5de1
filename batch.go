package main

// particleBatch flattens every particle of a spinner tree into contiguous
// float32 buffers for the OpenCL integrator. The traversal is pre-order and
// lobe-major, the same order the CPU update visits particles, and the refs
// slice preserves it for the scatter pass.
//
// Layout per particle: state holds x, y, vx, vy; lobe holds the owning lobe's
// center x, center y, lobe radius, and the particle's own radius.
type particleBatch struct {
	state []float32
	lobe  []float32
	refs  []*particle
}

const (
	batchStateStride = 4
	batchLobeStride  = 4
)

// reset empties the batch while keeping its capacity.
func (b *particleBatch) reset() {
	b.state = b.state[:0]
	b.lobe = b.lobe[:0]
	b.refs = b.refs[:0]
}

// size returns the number of particles gathered.
func (b *particleBatch) size() int {
	return len(b.refs)
}

// gather walks the tree and appends every particle with its current lobe
// geometry. Call after advanceGeometry so lobe centers reflect this tick's
// theta.
func (b *particleBatch) gather(n *spinnerNode) {
	for lobeIdx := 0; lobeIdx < lobeCount; lobeIdx++ {
		lx, ly := n.lobeCenter(lobeIdx)
		for _, p := range n.particles[lobeIdx] {
			b.state = append(b.state, float32(p.x), float32(p.y), float32(p.vx), float32(p.vy))
			b.lobe = append(b.lobe, float32(lx), float32(ly), float32(n.lobeRadius), float32(p.radius))
			b.refs = append(b.refs, p)
		}
	}
	for _, children := range n.children {
		for _, child := range children {
			b.gather(child)
		}
	}
}

// scatter writes the integrated state back onto the particles in gather
// order.
func (b *particleBatch) scatter() {
	for i, p := range b.refs {
		base := i * batchStateStride
		p.x = float64(b.state[base])
		p.y = float64(b.state[base+1])
		p.vx = float64(b.state[base+2])
		p.vy = float64(b.state[base+3])
	}
}
