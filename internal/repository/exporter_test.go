package repository_test

import (
	"encoding/json"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/nikolayk812/cakeshop/internal/domain"
	"github.com/nikolayk812/cakeshop/internal/repository"
)

func (suite *fileStoreSuite) TestNewExporter_BadArguments() {
	_, err := repository.NewExporter("", "kek-afrina")
	suite.EqualError(err, "dir is empty")

	_, err = repository.NewExporter(suite.dir, "")
	suite.EqualError(err, "prefix is empty")
}

func (suite *fileStoreSuite) TestExportSnapshot() {
	ctx := suite.T().Context()

	exporter, err := repository.NewExporter(suite.dir, "kek-afrina")
	suite.Require().NoError(err)

	items := []domain.OrderLineItem{randomItem(), randomItem()}
	snapshot := domain.CartSnapshot{
		CartID:      "cart_" + gofakeit.UUID(),
		Timestamp:   time.Now(),
		Items:       items,
		TotalItems:  len(items),
		TotalAmount: domain.TotalAmount(items),
		Currency:    "RM",
	}

	path, err := exporter.ExportSnapshot(ctx, snapshot)
	suite.Require().NoError(err)
	suite.Regexp(`kek-afrina-cart-\d+\.json$`, path)

	data, err := os.ReadFile(path)
	suite.Require().NoError(err)

	var decoded domain.CartSnapshot
	suite.Require().NoError(json.Unmarshal(data, &decoded))

	suite.Require().NotNil(decoded.ExportedAt)
	suite.False(decoded.ExportedAt.IsZero())

	// the document carries everything needed to re-derive its own total
	suite.True(decoded.TotalAmount.Equal(domain.TotalAmount(decoded.Items)))
	suite.Equal(len(decoded.Items), decoded.TotalItems)
}
