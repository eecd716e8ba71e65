package joywaves

import (
	"fmt"
	"math/rand"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Seed hold the primary seed used for random numbers and the noise field
type Seed struct {
	intSeed int64
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed
// `hexSeed` is either the empty string or a hex value
func Init(hexSeed string) (Seed, error) {
	if hexSeed != "" {
		return ParseSeed(hexSeed)
	}
	return Seed{intSeed: time.Now().UnixNano() - epoch2020}, nil
}

// ParseSeed returns the seed given the hex seed part of a filename
func ParseSeed(hexSeed string) (Seed, error) {
	intSeed, err := strconv.ParseInt(strings.TrimPrefix(hexSeed, "0x"), 16, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("invalid seed %q: %w", hexSeed, err)
	}
	return Seed{intSeed: intSeed}, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// Hex returns the seed as it appears in filenames
func (s Seed) Hex() string {
	return fmt.Sprintf("%x", s.intSeed)
}

// Rand returns a generator seeded with s. Each call starts the same sequence.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewSource(s.intSeed))
}

// GetFilename returns a string to use for this file
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%x%s", prefix, getGitHash(), s.intSeed, ext)
}

func getGitHash() string {
	var (
		cmdOut []byte
		err    error
	)
	cmdName := "git"
	cmdArgs := []string{"rev-parse", "--verify", "HEAD"}
	if cmdOut, err = exec.Command(cmdName, cmdArgs...).Output(); err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) < 7 {
		return hash
	}
	return hash[0:7]
}
