package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if !cfg.App.IsDev() {
		t.Fatal("expected default env to be dev")
	}
	if cfg.Catalog.BaseURL != "https://fakestoreapi.com" {
		t.Fatalf("unexpected catalog base url %q", cfg.Catalog.BaseURL)
	}
	if !cfg.Catalog.DemoFallback {
		t.Fatal("expected demo fallback enabled by default")
	}
	surcharge, err := cfg.Checkout.Surcharge()
	if err != nil {
		t.Fatalf("unexpected surcharge error: %v", err)
	}
	if surcharge.String() != "9.99" {
		t.Fatalf("unexpected surcharge %s", surcharge)
	}
}

func TestLoadRejectsBadSurcharge(t *testing.T) {
	os.Clearenv()
	t.Setenv("MARTX_SHIPPING_SURCHARGE", "free")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable surcharge")
	}
}

func TestSurchargeRejectsNegative(t *testing.T) {
	c := CheckoutConfig{ShippingSurcharge: "-1.00"}
	if _, err := c.Surcharge(); err == nil {
		t.Fatal("expected error for negative surcharge")
	}
}
