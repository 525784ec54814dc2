package noise

import (
	"math"

	"github.com/chewxy/math32"
)

// Xorshift hashes the IEEE-754 bit pattern of float32 inputs with a
// shift-xor-multiply integer hash
type Xorshift struct{}

const k1 uint32 = 0x456789ab

var (
	k3     = [3]uint32{0x456789ab, 0x6789ab45, 0x89ab4567}
	shifts = [3]uint32{1, 2, 3}
)

// UHash11 hashes one 32-bit value
func UHash11(n uint32) uint32 {
	n ^= n << 1
	n ^= n >> 1
	n *= k1
	n ^= n << 1
	return n * k1
}

// UHash22 hashes two 32-bit values
func UHash22(nx, ny uint32) (uint32, uint32) {
	tx, ty := nx, ny
	tx ^= ny << shifts[0]
	ty ^= nx << shifts[1]

	nx, ny = tx, ty
	tx ^= ny >> shifts[0]
	ty ^= nx >> shifts[1]

	nx = tx * k3[0]
	ny = ty * k3[1]
	tx ^= ny << shifts[0]
	ty ^= nx << shifts[1]

	return tx * k3[0], ty * k3[1]
}

// UHash33 hashes three 32-bit values
func UHash33(nx, ny, nz uint32) (uint32, uint32, uint32) {
	tx, ty, tz := nx, ny, nz
	tx ^= ny << shifts[0]
	ty ^= nz << shifts[1]
	tz ^= nx << shifts[2]

	nx, ny, nz = tx, ty, tz
	tx ^= ny >> shifts[0]
	ty ^= nz >> shifts[1]
	tz ^= nx >> shifts[2]

	nx = tx * k3[0]
	ny = ty * k3[1]
	nz = tz * k3[2]
	tx ^= ny << shifts[0]
	ty ^= nz << shifts[1]
	tz ^= nx << shifts[2]

	return tx * k3[0], ty * k3[1], tz * k3[2]
}

func unit(n uint32) float32 {
	return float32(n) / float32(math.MaxUint32)
}

// Rand11 returns a value in [0, 1] for p
func (Xorshift) Rand11(p float32) float32 {
	return unit(UHash11(math32.Float32bits(p)))
}

// Rand21 returns a value in [0, 1] for (x, y)
func (Xorshift) Rand21(x, y float32) float32 {
	r, _ := UHash22(math32.Float32bits(x), math32.Float32bits(y))
	return unit(r)
}

// Rand22 returns two values in [0, 1] for (x, y)
func (Xorshift) Rand22(x, y float32) (float32, float32) {
	rx, ry := UHash22(math32.Float32bits(x), math32.Float32bits(y))
	return unit(rx), unit(ry)
}

// Rand31 returns a value in [0, 1] for (x, y, z)
func (Xorshift) Rand31(x, y, z float32) float32 {
	r, _, _ := UHash33(math32.Float32bits(x), math32.Float32bits(y), math32.Float32bits(z))
	return unit(r)
}

// Rand33 returns three values in [0, 1] for (x, y, z)
func (Xorshift) Rand33(x, y, z float32) (float32, float32, float32) {
	rx, ry, rz := UHash33(math32.Float32bits(x), math32.Float32bits(y), math32.Float32bits(z))
	return unit(rx), unit(ry), unit(rz)
}
