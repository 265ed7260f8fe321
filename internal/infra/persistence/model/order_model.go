package model

// OrderCollectionName is the mongo collection for orders. Order documents
// are schemaless: the submitted payload is persisted verbatim together with
// the computed order_id and final_price, so there is no fixed struct here.
const OrderCollectionName = "orders"
