// Copyright (c) AgentPort Authors.
// Licensed under the MIT License.

/*
Package n8n 将已校验的工作流图翻译为 n8n 节点/连线自动化格式。

# 概述

每个图节点映射为一个带类型的 n8n 单元：agent 节点按 provider 获取固定
凭据槽位，condition 节点映射为二分支 IF 单元，loop 节点映射为批量迭代
单元，触发器按 kind 映射为四种触发单元之一并原样携带其 config。节点
坐标由 BFS 分层布局计算，纯装饰性，不影响执行语义。

# 入口

  - Mapper.MapWorkflow — 整图翻译
  - Mapper.MapAgent    — 单 Agent 翻译（无图场景）
*/
package n8n
