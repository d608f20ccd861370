package hoyo

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"time"
)

// Salt for the overseas web endpoints (app version 1.5.0).
const dsSalt = "6s25p5ox5y14umn1p61aqyyvbvvl3lrt"

const dsLetters = "abcdefghijklmnopqrstuvwxyz"

// generateDS produces the DS header the record endpoints require:
// "<unix>,<nonce>,<md5(salt=...&t=...&r=...)>".
func generateDS() string {
	t := time.Now().Unix()
	r := make([]byte, 6)
	for i := range r {
		r[i] = dsLetters[rand.Intn(len(dsLetters))]
	}
	sum := md5.Sum([]byte(fmt.Sprintf("salt=%s&t=%d&r=%s", dsSalt, t, r)))
	return fmt.Sprintf("%d,%s,%x", t, r, sum)
}
