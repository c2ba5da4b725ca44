package model

//go:generate mockgen -typed -source=./model.go -destination=../mocks/mock_model.go -package=mocks DeviceTable,NetworkGraph,MonitorSet
