// Package docs Tourism Directory API.
//
// Каталог магазинов и достопримечательностей туристического приложения.
// Ранжирует выдачу и решает, какие экраны доступны роли текущей сессии.
//
// Основные возможности:
// - Решение гейта доступа для экрана клиентского приложения
// - Выдача каталога в режимах trending, rating, distance, category, search
// - Оценки туристов с асинхронным пересчётом рейтинга
// - Статистика каталога для админ-панели
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer:
//
//	SecurityDefinitions:
//	bearer:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
