// Command passcode_hash prints a bcrypt hash for MANAGER_PASSCODE_HASH.
//
// Usage:
//
//	MANAGER_PASSCODE=1234 go run ./cmd/passcode_hash
//	go run ./cmd/passcode_hash 1234
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sangwaemm/The-Partners-App/internal/utils"
)

func main() {
	passcode := os.Getenv("MANAGER_PASSCODE")
	if len(os.Args) > 1 {
		passcode = os.Args[1]
	}
	if passcode == "" {
		log.Fatalf("pass the passcode as the first argument or set MANAGER_PASSCODE")
	}

	hash, err := utils.HashPassword(passcode)
	if err != nil {
		log.Fatalf("hash passcode: %v", err)
	}
	fmt.Printf("MANAGER_PASSCODE_HASH=%s\n", hash)
}
