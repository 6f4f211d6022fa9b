package fifo

import "testing"

func TestSizeFor(t *testing.T) {
	tests := []struct {
		requested  uint16
		wantCode   uint8
		wantBucket uint16
	}{
		{0, 0, 8},
		{1, 0, 8},
		{8, 0, 8},
		{9, 1, 16},
		{64, 3, 64},
		{65, 4, 128},
		{512, 6, 512},
		{1024, 7, 1024},
		{1025, 8, 2048},
		{2048, 8, 2048},
	}

	for _, tt := range tests {
		code, bucket := SizeFor(tt.requested)
		if code != tt.wantCode || bucket != tt.wantBucket {
			t.Errorf("SizeFor(%d) = (%d, %d), want (%d, %d)",
				tt.requested, code, bucket, tt.wantCode, tt.wantBucket)
		}
	}
}

// TestSizeForLadder checks the testable property from spec §8.3: bucket
// >= n, bucket is a power of two in [8, 2048], and code == log2(bucket)-3.
func TestSizeForLadder(t *testing.T) {
	for n := uint16(0); n <= MaxPacketSize; n++ {
		code, bucket := SizeFor(n)

		if bucket < n {
			t.Fatalf("SizeFor(%d): bucket %d < requested", n, bucket)
		}
		if bucket < 8 || bucket > 2048 {
			t.Fatalf("SizeFor(%d): bucket %d out of range", n, bucket)
		}
		if bucket&(bucket-1) != 0 {
			t.Fatalf("SizeFor(%d): bucket %d is not a power of two", n, bucket)
		}

		want := uint8(0)
		for b := bucket; b > 8; b >>= 1 {
			want++
		}
		if code != want {
			t.Fatalf("SizeFor(%d): code = %d, want %d", n, code, want)
		}
	}
}

func TestSizeForFatalAboveMax(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SizeFor(2049) did not panic")
		}
	}()
	SizeFor(2049)
}
