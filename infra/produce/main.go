package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	AssetService *AssetProduceService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	assetService := InitAssetProduceService(channel)
	if assetService == nil {
		panic("Failed to initialize Asset produce service")
	}

	produceInstance = &Produce{
		AssetService: assetService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
