// Copyright (c) AgentPort Authors.
// Licensed under the MIT License.

/*
Package adapters 聚合三个目标格式翻译器并提供并发多目标导出。

# 概述

三个目标（n8n / langgraph / crewai）是相互独立的策略实现，各自暴露
MapAgent 与 MapWorkflow 两个纯函数入口；本包不强加共享基类，只提供
Target 枚举、ExportAll 并发导出与指标/追踪接线。

# 入口

  - ExportAll — 对同一张已校验图并发生成全部三种目标文档
*/
package adapters
