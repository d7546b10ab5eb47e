//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecarith/pkg/ec"
	"github.com/smallyu/go-ecarith/pkg/ecdh"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECARITH WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECArith", map[string]interface{}{
		"Curves":       js.FuncOf(Curves),
		"PublicKey":    js.FuncOf(PublicKey),
		"SharedSecret": js.FuncOf(SharedSecret),
	})

	<-c
}

// pointDTO is the JSON form of a point. Both coordinates are hex strings;
// the identity is encoded as {"identity": true}.
type pointDTO struct {
	X        string `json:"x,omitempty"`
	Y        string `json:"y,omitempty"`
	Identity bool   `json:"identity,omitempty"`
}

func encodePoint(p ec.Point) string {
	dto := pointDTO{Identity: p.IsIdentity()}
	if !dto.Identity {
		dto.X = p.X().Text(16)
		dto.Y = p.Y().Text(16)
	}
	b, _ := json.Marshal(dto)
	return string(b)
}

func decodePoint(s string) (ec.Point, error) {
	var dto pointDTO
	if err := json.Unmarshal([]byte(s), &dto); err != nil {
		return ec.Point{}, fmt.Errorf("invalid point json: %v", err)
	}
	if dto.Identity {
		return ec.Identity(), nil
	}
	x, okX := new(big.Int).SetString(dto.X, 16)
	y, okY := new(big.Int).SetString(dto.Y, 16)
	if !okX || !okY {
		return ec.Point{}, fmt.Errorf("invalid point coordinates")
	}
	return ec.NewPoint(x, y), nil
}

func exchange(name string) (*ecdh.KeyExchange, error) {
	nc, err := ec.Lookup(name)
	if err != nil {
		return nil, err
	}
	return ecdh.New(nc.Curve, nc.G)
}

func parseKey(s string) (*big.Int, error) {
	k, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid private key %q", s)
	}
	return k, nil
}

// Curves returns a JSON array of the built-in curve names.
func Curves(this js.Value, args []js.Value) interface{} {
	b, _ := json.Marshal(ec.Names())
	return string(b)
}

// PublicKey derives a public key.
// Arguments:
// 0: curve name
// 1: private key (decimal or 0x-prefixed hex)
// Returns:
// JSON point or an "error: ..." string
func PublicKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, privateKey)"
	}
	kx, err := exchange(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := parseKey(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pub, err := kx.GeneratePublicKey(k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return encodePoint(pub)
}

// SharedSecret derives the shared secret with a peer.
// Arguments:
// 0: curve name
// 1: private key (decimal or 0x-prefixed hex)
// 2: JSON point of the peer's public key
// Returns:
// JSON point or an "error: ..." string
func SharedSecret(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, privateKey, publicKey)"
	}
	kx, err := exchange(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := parseKey(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pub, err := decodePoint(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	secret, err := kx.CalculateSharedSecret(k, pub)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return encodePoint(secret)
}
