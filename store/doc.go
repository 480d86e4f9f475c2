// Copyright (c) AgentPort Authors.
// Licensed under the MIT License.

/*
Package store 提供工作流定义与导出文档的本地目录。

# 概述

store 将工作流图（JSON 序列化）与各目标导出文档保存在本地 SQLite 中，
供重复导出与审计对照使用。不涉及任何网络服务；":memory:" DSN 适合测试。
*/
package store
