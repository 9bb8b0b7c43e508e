package service

import "math/rand"

const (
	minCookTime = 5
	maxCookTime = 15
)

// CookTimer supplies the kitchen cook time, in minutes, for a new order.
// Production uses RandomCookTime; tests inject a deterministic source.
type CookTimer func() int

// RandomCookTime draws uniformly from [5, 15]. Each call is independent.
func RandomCookTime() int {
	return rand.Intn(maxCookTime-minCookTime+1) + minCookTime
}
