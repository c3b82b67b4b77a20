package storage

import (
	"context"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{prefix: "", want: "SizzleSync_Sales_20261019.txt"},
		{prefix: "reports", want: "reports/SizzleSync_Sales_20261019.txt"},
		{prefix: "/reports/daily/", want: "reports/daily/SizzleSync_Sales_20261019.txt"},
	}

	for _, tt := range tests {
		c, err := NewR2Client(context.Background(), Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "key",
			SecretKey: "secret",
			Bucket:    "sales",
			Prefix:    tt.prefix,
		})
		if err != nil {
			t.Fatalf("NewR2Client returned error: %v", err)
		}
		if got := c.Key("SizzleSync_Sales_20261019.txt"); got != tt.want {
			t.Errorf("prefix %q: expected %q, got %q", tt.prefix, tt.want, got)
		}
	}
}

func TestNewR2Client_RequiresBucket(t *testing.T) {
	if _, err := NewR2Client(context.Background(), Config{}); err == nil {
		t.Fatal("expected error without bucket")
	}
}
