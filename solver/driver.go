package solver

// BlockEdge is the suggested cube edge length of one parallel work unit
// (spec.md §4.7 step 1).
const BlockEdge = 32

// ForEachBlock partitions an NX*NY*NZ grid into BlockEdge-sized cubes and
// runs fn once per cell, in natural nested (z,y,x) order within a block,
// with one block per pool job. Block processing order is unspecified;
// correctness relies only on the A-A property that no two blocks ever
// write the same address within one call (spec.md §4.7 step 2, §5
// ordering guarantees).
func ForEachBlock(pool *Pool, nx, ny, nz int, fn func(x, y, z int)) {
	blocksX := ceilDiv(nx, BlockEdge)
	blocksY := ceilDiv(ny, BlockEdge)
	blocksZ := ceilDiv(nz, BlockEdge)

	var jobs []func()
	for bz := 0; bz < blocksZ; bz++ {
		for by := 0; by < blocksY; by++ {
			for bx := 0; bx < blocksX; bx++ {
				bx, by, bz := bx, by, bz
				jobs = append(jobs, func() {
					z0, z1 := bz*BlockEdge, min(nz, (bz+1)*BlockEdge)
					y0, y1 := by*BlockEdge, min(ny, (by+1)*BlockEdge)
					x0, x1 := bx*BlockEdge, min(nx, (bx+1)*BlockEdge)
					for z := z0; z < z1; z++ {
						for y := y0; y < y1; y++ {
							for x := x0; x < x1; x++ {
								fn(x, y, z)
							}
						}
					}
				})
			}
		}
	}
	pool.Do(jobs)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
