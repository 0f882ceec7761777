package montecarlo

import (
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/vanilla/option"
)

// blockSize is the number of paths per RNG substream. The estimate for
// a given (Seed, Paths) is invariant under the worker count because
// blocks, not workers, own the streams.
const blockSize = 1 << 16

// partial holds the moments of one block's discounted payoffs.
type partial struct {
	n    int
	mean float64
	m2   float64 // sum of squared deviations from mean
}

// Price estimates the value of o from n simulated terminal prices.
//
// Algorithm Outline:
//  1. Validate; derive drift (r−σ²/2)T, diffusion σ√T, discount e^{−rT}.
//  2. Split the n paths into fixed-size blocks; block k samples from a
//     substream derived from (seed, k) and reduces to (mean, M2) via
//     gonum's one-pass moments.
//  3. Workers pull block indices from an atomic counter; partials land
//     in a slice indexed by block, so arrival order is irrelevant.
//  4. Pool the per-block moments in block order, then report
//     mean, σ̂/√n and the 95% width 2·1.96·σ̂/√n.
//
// Complexity: O(n) time, O(blockSize) memory per worker.
func Price(o option.Option, opts Options) (Result, error) {
	if err := o.Validate(); err != nil {
		return Result{}, err
	}
	if opts.Paths < 1 {
		return Result{}, ErrPaths
	}
	if opts.Workers < 0 {
		return Result{}, ErrWorkers
	}

	var (
		paths  = opts.Paths
		seed   = seedFor(opts.Seed)
		drift  = (o.R - 0.5*o.Sigma*o.Sigma) * o.T
		volT   = o.Sigma * math.Sqrt(o.T)
		disc   = math.Exp(-o.R * o.T)
		blocks = (paths + blockSize - 1) / blockSize
	)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > blocks {
		workers = blocks
	}

	partials := make([]partial, blocks)
	var next uint64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			buf := make([]float64, blockSize)
			for {
				k := int(atomic.AddUint64(&next, 1)) - 1
				if k >= blocks {
					return
				}
				count := blockSize
				if k == blocks-1 {
					count = paths - k*blockSize
				}
				norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(deriveStream(seed, uint64(k)))}
				for i := 0; i < count; i++ {
					st := o.S * math.Exp(drift+volT*norm.Rand())
					buf[i] = disc * o.Payoff(st)
				}
				partials[k] = blockMoments(buf[:count])
			}
		}()
	}
	wg.Wait()

	// Pooled combination in block order (Chan et al. update); since the
	// inputs are indexed by block, the result cannot depend on which
	// worker produced them or when.
	total := partials[0]
	for _, p := range partials[1:] {
		delta := p.mean - total.mean
		n := total.n + p.n
		total.m2 += p.m2 + delta*delta*float64(total.n)*float64(p.n)/float64(n)
		total.mean += delta * float64(p.n) / float64(n)
		total.n = n
	}

	res := Result{Price: total.mean, Paths: paths}
	if paths > 1 {
		sigma := math.Sqrt(total.m2 / float64(paths-1))
		res.StdErr = sigma / math.Sqrt(float64(paths))
		res.ConfWidth = 2 * 1.96 * res.StdErr
	}

	return res, nil
}

// blockMoments reduces one block of samples to (n, mean, M2).
func blockMoments(xs []float64) partial {
	p := partial{n: len(xs)}
	if p.n == 0 {
		return p
	}
	var std float64
	p.mean, std = stat.MeanStdDev(xs, nil)
	if p.n > 1 {
		p.m2 = std * std * float64(p.n-1)
	}

	return p
}
