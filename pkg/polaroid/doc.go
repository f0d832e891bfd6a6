// Package polaroid places the rotated photo elements of the hero and gallery
// panels.
//
// # Gallery
//
// [Generator.Gallery] scatters photos across a container. Each photo gets a
// preset size, a rotation in [-5°, 5°] and a uniformly random position whose
// rotated bounding box stays inside the container minus a 30px padding. When
// the container is too small the position pins to the padding. z-indices
// ascend from 10 in catalog order.
//
// # Hero
//
// [Generator.Hero] places the two hero photos side by side, centred as a
// pair at half the container height. Only the rotation (in [-2°, 2°]) is
// random.
//
// # Randomness
//
// All randomness comes from the [Rand] given to [NewGenerator]; a
// *rand.Rand from math/rand/v2 satisfies it. [NewSeeded] derives both the
// random stream and the polaroid ids from a single seed, so a seed fully
// determines the output.
package polaroid
