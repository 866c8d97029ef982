package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikolayk812/cakeshop/internal/config"
)

func TestDefault(t *testing.T) {
	shop := config.Default()

	assert.Equal(t, "Kek Afrina", shop.Name)
	assert.Equal(t, "60196233479", shop.Phone)
	assert.Equal(t, "9 AM - 8 PM Daily", shop.BusinessHours)
	assert.Equal(t, "Custom Cakes & Delivery Available", shop.Services)
	assert.Equal(t, "kek-afrina", shop.FilePrefix)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHOP_NAME", "Kek Afrina Test Kitchen")
	t.Setenv("SHOP_PHONE", "60123456789")

	shop := config.Load()

	assert.Equal(t, "Kek Afrina Test Kitchen", shop.Name)
	assert.Equal(t, "60123456789", shop.Phone)
	// untouched fields keep their defaults
	assert.Equal(t, "9 AM - 8 PM Daily", shop.BusinessHours)
	assert.Equal(t, "kek-afrina", shop.FilePrefix)
}
