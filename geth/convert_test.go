package geth

import (
	"math/big"
	"testing"

	gethcommon "github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/ethabi/ethabi/core/types"
)

func TestAddressConversionRoundTrip(t *testing.T) {
	a := types.HexToAddress("0xdeadbeef00000000000000000000000000000001")
	if FromGethAddress(ToGethAddress(a)) != a {
		t.Fatal("address round trip mismatch")
	}
	g := gethcommon.HexToAddress("0xdeadbeef00000000000000000000000000000001")
	if ToGethAddress(a) != g {
		t.Fatalf("address conversion: got %s, want %s", ToGethAddress(a), g)
	}
}

func TestHashConversionRoundTrip(t *testing.T) {
	h := types.HexToHash("0x1234")
	if FromGethHash(ToGethHash(h)) != h {
		t.Fatal("hash round trip mismatch")
	}
}

func TestUint256Conversion(t *testing.T) {
	b := new(big.Int).Lsh(big.NewInt(1), 200)
	if FromUint256(ToUint256(b)).Cmp(b) != 0 {
		t.Fatal("uint256 round trip mismatch")
	}
	if FromUint256(nil).Sign() != 0 {
		t.Fatal("nil uint256 should convert to zero")
	}
	if !ToUint256(nil).IsZero() {
		t.Fatal("nil big.Int should convert to zero")
	}
}

func TestLogConversionRoundTrip(t *testing.T) {
	l := &types.Log{
		Address:     types.HexToAddress("0x01"),
		Topics:      []types.Hash{types.HexToHash("0xaa"), types.HexToHash("0xbb")},
		Data:        []byte{1, 2, 3},
		BlockNumber: 7,
		TxIndex:     2,
		Index:       5,
		Removed:     true,
	}
	back := FromGethLog(ToGethLog(l))
	if back.Address != l.Address || len(back.Topics) != 2 || back.Topics[1] != l.Topics[1] {
		t.Fatal("log topics/address mismatch")
	}
	if back.BlockNumber != 7 || back.TxIndex != 2 || back.Index != 5 || !back.Removed {
		t.Fatal("log metadata mismatch")
	}
	if FromGethLog(nil) != nil || ToGethLog(nil) != nil {
		t.Fatal("nil logs should stay nil")
	}
}

func TestFromGethLogTopics(t *testing.T) {
	gl := &gethtypes.Log{
		Address: gethcommon.HexToAddress("0x02"),
		Topics:  []gethcommon.Hash{gethcommon.HexToHash("0xcc")},
		Data:    []byte{9},
	}
	l := FromGethLog(gl)
	if l.Address != types.HexToAddress("0x02") || l.Topics[0] != types.HexToHash("0xcc") {
		t.Fatal("geth log conversion mismatch")
	}
}
